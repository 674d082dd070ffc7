package routes

import (
	"venue-booking/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Venues  *handlers.VenueHandler
	Artists *handlers.ArtistHandler
	Shows   *handlers.ShowHandler
	Upload  *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	venues := v1.Group("/venues")
	{
		venues.Get("/", h.Venues.ListVenues)
		venues.Post("/search", h.Venues.SearchVenues)
		venues.Get("/:id", h.Venues.GetVenue)
		venues.Post("/", h.Venues.CreateVenue)
	}

	artists := v1.Group("/artists")
	{
		artists.Get("/", h.Artists.ListArtists)
		artists.Post("/search", h.Artists.SearchArtists)
		artists.Get("/:id", h.Artists.GetArtist)
		artists.Post("/", h.Artists.CreateArtist)
	}

	shows := v1.Group("/shows")
	{
		shows.Get("/", h.Shows.ListShows)
		shows.Get("/counts", h.Shows.GetShowCounts)
		shows.Post("/", h.Shows.CreateShow)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
