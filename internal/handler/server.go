// Package handler implements the HTTP handlers for the Wayfarer API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, gear.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wayfarer/internal/domain"
)

// TripServicer defines the trip, journal, and photo operations the handlers
// depend on. Defining the interface here (in the consumer package) follows the
// Go convention: "accept interfaces, return concrete types".
type TripServicer interface {
	List() []domain.Trip
	Get(id string) (domain.Trip, error)
	Active() (domain.Trip, bool)
	SetActive(ctx context.Context, id string) (domain.Trip, error)
	Add(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	Update(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error)
	Remove(ctx context.Context, id string) error

	EntriesForTrip(tripID string) []domain.JournalEntry
	Entry(id string) (domain.JournalEntry, error)
	AddEntry(ctx context.Context, in domain.JournalEntryInput) (domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, id string, patch domain.JournalEntryPatch) (domain.JournalEntry, error)
	RemoveEntry(ctx context.Context, id string) error

	PhotosForTrip(tripID string) []domain.Photo
	PhotoByID(id string) (domain.Photo, error)
	AddPhoto(ctx context.Context, in domain.PhotoInput) (domain.Photo, error)
	UpdatePhoto(ctx context.Context, id string, patch domain.PhotoPatch) (domain.Photo, error)
	RemovePhoto(ctx context.Context, id string) error
}

// GearServicer defines the packing-list operations the gear handlers depend on.
type GearServicer interface {
	Items() []domain.GearItem
	Categories() []domain.GearCategory
	ItemsByCategory(categoryID string) []domain.GearItem
	TotalWeight() float64
	PackedWeight() float64
	PackingProgress() domain.PackingProgress
	AddItem(ctx context.Context, in domain.GearItemInput) (domain.GearItem, error)
	UpdateItem(ctx context.Context, id string, patch domain.GearItemPatch) (domain.GearItem, error)
	RemoveItem(ctx context.Context, id string) error
	TogglePacked(ctx context.Context, id string) (domain.GearItem, error)
	AddCategory(ctx context.Context, name, icon string) (domain.GearCategory, error)
	UpdateCategory(ctx context.Context, id string, patch domain.GearCategoryPatch) (domain.GearCategory, error)
	RemoveCategory(ctx context.Context, id string) error
}

// ChecklistServicer defines the checklist operations the handlers depend on.
type ChecklistServicer interface {
	Initialized() bool
	Checklist() domain.Checklist
	Categories() []string
	InitializeFromTemplate(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
	ToggleItem(ctx context.Context, category, itemID string) (domain.ChecklistItem, error)
	AddCustomItem(ctx context.Context, category, text string) (domain.ChecklistItem, error)
	RemoveItem(ctx context.Context, category, itemID string) error
	Progress() domain.ChecklistProgress
	CategoryProgress(category string) domain.ChecklistProgress
}

// VehicleServicer defines the vehicle operations the handlers depend on.
type VehicleServicer interface {
	Get() domain.Vehicle
	SetName(ctx context.Context, name string) (domain.Vehicle, error)
	SetPhoto(ctx context.Context, uri string) (domain.Vehicle, error)
	AddModification(ctx context.Context, name, description string) (domain.VehicleMod, error)
	UpdateModification(ctx context.Context, id string, patch domain.VehicleModPatch) (domain.VehicleMod, error)
	RemoveModification(ctx context.Context, id string) error
}

// AssetServicer defines the digital asset operations the handlers depend on.
type AssetServicer interface {
	List() []domain.DigitalAsset
	ByType(t domain.AssetType) []domain.DigitalAsset
	Get(id string) (domain.DigitalAsset, error)
	Add(ctx context.Context, in domain.DigitalAssetInput) (domain.DigitalAsset, error)
	Update(ctx context.Context, id string, patch domain.DigitalAssetPatch) (domain.DigitalAsset, error)
	Remove(ctx context.Context, id string) error
}

// GalleryServicer defines the gallery operations the handlers depend on.
type GalleryServicer interface {
	List() []domain.GalleryPhoto
	Get(id string) (domain.GalleryPhoto, error)
	Add(ctx context.Context, caption, description, imageURI string) (domain.GalleryPhoto, error)
	UpdateDetails(ctx context.Context, id, caption, description string) (domain.GalleryPhoto, error)
	Remove(ctx context.Context, id string) error
}

// ProfileServicer defines the profile operations the handlers depend on.
type ProfileServicer interface {
	Get() domain.Profile
	Update(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error)
	Reset(ctx context.Context) (domain.Profile, error)
}

// ExportServicer produces the flat journal export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Services bundles every dependency of Server. Nil services leave their
// routes unregistered.
type Services struct {
	Trips     TripServicer
	Gear      GearServicer
	Checklist ChecklistServicer
	Vehicle   VehicleServicer
	Assets    AssetServicer
	Gallery   GalleryServicer
	Profile   ProfileServicer
	Export    ExportServicer
}

// Server serves every API endpoint. Register its routes with Register.
type Server struct {
	trips     TripServicer
	gear      GearServicer
	checklist ChecklistServicer
	vehicle   VehicleServicer
	assets    AssetServicer
	gallery   GalleryServicer
	profile   ProfileServicer
	export    ExportServicer
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svcs Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		trips:     svcs.Trips,
		gear:      svcs.Gear,
		checklist: svcs.Checklist,
		vehicle:   svcs.Vehicle,
		assets:    svcs.Assets,
		gallery:   svcs.Gallery,
		profile:   svcs.Profile,
		export:    svcs.Export,
		log:       logger,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{}, nil)
}

// Register mounts every route on r. Middleware should be added to r first.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Post("/geo/route-distance", s.RouteDistance)

	if s.trips != nil {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/active", s.GetActiveTrip)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Post("/activate", s.ActivateTrip)
				r.Get("/entries", s.ListEntries)
				r.Post("/entries", s.CreateEntry)
				r.Get("/photos", s.ListPhotos)
				r.Post("/photos", s.CreatePhoto)
			})
		})
		r.Route("/entries/{id}", func(r chi.Router) {
			r.Get("/", s.GetEntry)
			r.Put("/", s.UpdateEntry)
			r.Delete("/", s.DeleteEntry)
		})
		r.Route("/photos/{id}", func(r chi.Router) {
			r.Get("/", s.GetPhoto)
			r.Put("/", s.UpdatePhoto)
			r.Delete("/", s.DeletePhoto)
		})
	}

	if s.gear != nil {
		r.Route("/gear", func(r chi.Router) {
			r.Get("/summary", s.GetGearSummary)
			r.Get("/items", s.ListGearItems)
			r.Post("/items", s.CreateGearItem)
			r.Put("/items/{id}", s.UpdateGearItem)
			r.Delete("/items/{id}", s.DeleteGearItem)
			r.Post("/items/{id}/toggle", s.ToggleGearItem)
			r.Get("/categories", s.ListGearCategories)
			r.Post("/categories", s.CreateGearCategory)
			r.Put("/categories/{id}", s.UpdateGearCategory)
			r.Delete("/categories/{id}", s.DeleteGearCategory)
			r.Get("/categories/{id}/items", s.ListGearItemsByCategory)
		})
	}

	if s.checklist != nil {
		r.Route("/checklist", func(r chi.Router) {
			r.Get("/", s.GetChecklist)
			r.Post("/initialize", s.InitializeChecklist)
			r.Post("/reset", s.ResetChecklist)
			r.Get("/progress", s.GetChecklistProgress)
			r.Get("/{category}/progress", s.GetChecklistCategoryProgress)
			r.Post("/{category}/items", s.AddChecklistItem)
			r.Post("/{category}/items/{itemId}/toggle", s.ToggleChecklistItem)
			r.Delete("/{category}/items/{itemId}", s.DeleteChecklistItem)
		})
	}

	if s.vehicle != nil {
		r.Route("/vehicle", func(r chi.Router) {
			r.Get("/", s.GetVehicle)
			r.Put("/name", s.SetVehicleName)
			r.Put("/photo", s.SetVehiclePhoto)
			r.Post("/mods", s.CreateVehicleMod)
			r.Put("/mods/{id}", s.UpdateVehicleMod)
			r.Delete("/mods/{id}", s.DeleteVehicleMod)
		})
	}

	if s.assets != nil {
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", s.ListAssets)
			r.Post("/", s.CreateAsset)
			r.Get("/{id}", s.GetAsset)
			r.Put("/{id}", s.UpdateAsset)
			r.Delete("/{id}", s.DeleteAsset)
		})
	}

	if s.gallery != nil {
		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", s.ListGallery)
			r.Post("/", s.CreateGalleryPhoto)
			r.Get("/{id}", s.GetGalleryPhoto)
			r.Put("/{id}", s.UpdateGalleryPhoto)
			r.Delete("/{id}", s.DeleteGalleryPhoto)
		})
	}

	if s.profile != nil {
		r.Get("/profile", s.GetProfile)
		r.Put("/profile", s.UpdateProfile)
		r.Post("/profile/reset", s.ResetProfile)
	}

	if s.export != nil {
		r.Get("/export", s.GetExport)
	}
}

// Handler returns a bare chi router serving every route, without middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}
