package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/config"
	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/listing"
	"github.com/voyago/voyago/internal/repository/rest"
	"github.com/voyago/voyago/internal/resource"
	"github.com/voyago/voyago/internal/service"
	"github.com/voyago/voyago/internal/session"
)

// Price presets mirror the filter panel of the web UI.
var pricePresets = map[string]domain.PriceRange{
	"budget": {Min: 0, Max: 100},
	"mid":    {Min: 100, Max: 300},
	"luxury": {Min: 300, Max: 1000},
}

func main() {
	log.SetFlags(0)

	search := flag.String("search", "", "substring match on name or location")
	destType := flag.String("type", "", "exact destination type (Beach, Mountain, ...)")
	minRating := flag.Float64("min-rating", 0, "minimum rating")
	price := flag.String("price", "", "price preset: budget, mid, luxury")
	sortKey := flag.String("sort", string(domain.DefaultSortKey), "sort key: rating, name, price, reviews")
	page := flag.Int("page", 1, "1-indexed page")
	login := flag.String("login", "", "authenticate as username:password")
	favorite := flag.String("favorite", "", "toggle favorite for a destination id")
	logout := flag.Bool("logout", false, "clear the stored session")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	client := resource.NewClient(cfg.APIBaseURL, nil)
	users := rest.NewUserStore(client)
	destinations := rest.NewDestinationStore(client)
	auth := service.NewAuthService(users, session.NewFileStore(cfg.SessionFile))

	if _, err := auth.Restore(); err != nil {
		log.Fatalf("explore: restore session: %v", err)
	}

	if *logout {
		if err := auth.Logout(); err != nil {
			log.Fatalf("explore: logout: %v", err)
		}
		fmt.Println("logged out")
		return
	}

	if *login != "" {
		username, password, ok := strings.Cut(*login, ":")
		if !ok {
			log.Fatal("explore: -login expects username:password")
		}
		user, err := auth.Login(ctx, username, password)
		if err != nil {
			log.Fatalf("explore: login: %v", err)
		}
		fmt.Printf("logged in as %s\n", user.Username)
	}

	if *favorite != "" {
		id, err := uuid.Parse(*favorite)
		if err != nil {
			log.Fatalf("explore: -favorite expects a destination id: %v", err)
		}
		user, err := auth.ToggleFavorite(ctx, id)
		if err != nil {
			log.Fatalf("explore: toggle favorite: %v", err)
		}
		fmt.Printf("favorites now %d destinations\n", len(user.Favorites))
	}

	spec := domain.FilterSpec{Search: *search, MinRating: *minRating}
	if *destType != "" {
		parsed, err := domain.ParseDestinationType(*destType)
		if err != nil {
			log.Fatalf("explore: %v", err)
		}
		spec.Type = parsed
	}
	if *price != "" {
		preset, ok := pricePresets[strings.ToLower(*price)]
		if !ok {
			log.Fatalf("explore: unknown price preset %q", *price)
		}
		spec.PriceRange = &preset
	}

	records, err := fetch(ctx, destinations, spec)
	if err != nil {
		log.Fatalf("explore: list destinations: %v", err)
	}

	controller := listing.NewController(cfg.PageSize)
	controller.SetFilter(spec)
	controller.SetSort(domain.SortKey(*sortKey))
	controller.SetPage(*page)

	result := controller.Render(records)
	fmt.Printf("%d destinations, page %d of %d\n\n", result.TotalItems, controller.CurrentPage(), result.TotalPages)

	identity := auth.Current()
	for _, d := range result.Items {
		mark := " "
		if identity != nil && identity.IsFavorite(d.ID) {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-28s %-20s %-10s %.1f (%d reviews)", mark, d.Name, d.Location, d.Type, d.Rating, d.ReviewCount())
		if d.PriceRange != nil {
			line += fmt.Sprintf("  $%.0f-%.0f", d.PriceRange.Min, d.PriceRange.Max)
		}
		fmt.Println(line)
	}
}

// fetch pushes the type filter down to the store when it is the only
// predicate the store can evaluate; the pipeline re-applies the full spec
// either way.
func fetch(ctx context.Context, destinations *rest.DestinationStore, spec domain.FilterSpec) ([]domain.Destination, error) {
	if spec.Type != "" {
		return destinations.ListByType(ctx, spec.Type)
	}
	return destinations.List(ctx)
}
