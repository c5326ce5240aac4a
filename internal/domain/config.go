package domain

// KeyPrefix is the default namespace for every key written to the store.
const KeyPrefix = "neighborly:"

// SemanticConfig holds internal settings of the embedding-based category classifier.
type SemanticConfig struct {
	Model            string
	Dimensions       int
	MinSimilarity    float64
	QueryInstruction string
}

// DefaultSemanticConfig returns defaults tuned for short service queries.
func DefaultSemanticConfig() SemanticConfig {
	return SemanticConfig{
		Model:            "text-embedding-3-small",
		Dimensions:       256,
		MinSimilarity:    0.35,
		QueryInstruction: "Represent this local service request for category matching: ",
	}
}
