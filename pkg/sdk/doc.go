// Package neighborly provides an embeddable Go client for the neighborly
// local-services search: one catalog of providers aggregated from several
// platforms (Rover, TaskRabbit, Care.com, ...), searched by category,
// location and keyword, ranked and grouped by platform.
//
// The catalog is read from a YAML seed file, an in-memory slice or a
// Redis/Valkey instance populated by neighborly-seed.
//
//	client, _ := neighborly.New(ctx,
//	    neighborly.WithCatalogFile("data/providers.yaml"),
//	    neighborly.WithGeocoderFile("data/places.yaml"),
//	)
//	defer client.Close()
//
//	res, _ := client.Search().
//	    Keyword("dog walker").
//	    Location("Brooklyn, NY").
//	    MinRating(4.5).
//	    SortBy(neighborly.SortDistance).
//	    Do(ctx)
//
//	for _, p := range res.Results {
//	    fmt.Println(p.Name, p.PlatformName, p.Price)
//	}
package neighborly
