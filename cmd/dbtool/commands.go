package main

import (
	"boulderhall-service/internal/adapters/location"
	"boulderhall-service/internal/adapters/source"
	"boulderhall-service/internal/app"
	"boulderhall-service/internal/config"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/logging"
	"boulderhall-service/internal/services"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries state shared between the root command and its subcommands.
type cli struct {
	app *app.App
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	return (&cli{}).rootCmd()
}

// closing wraps a RunE so the App is released whether or not it fails.
// PersistentPostRunE would be skipped on error.
func (c *cli) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := c.close(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

func (c *cli) close() error {
	if c.log != nil {
		_ = c.log.Sync()
	}
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Maintain boulder hall storage and query halls offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			level := "warn"
			if verbose {
				level = "debug"
			}
			if c.log, err = logging.New(level, true); err != nil {
				return err
			}

			c.app, err = app.Build(cmd.Context(), cfg, c.log)
			if err != nil {
				c.app = nil
			}
			return err
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List or toggle favorite halls",
	}
	favoritesCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the favorite hall names",
			Args:  cobra.NoArgs,
			RunE:  c.closing(c.favoritesList),
		},
		&cobra.Command{
			Use:   "toggle NAME",
			Short: "Add NAME to the favorites, or remove it if present",
			Args:  cobra.ExactArgs(1),
			RunE:  c.closing(c.favoritesToggle),
		},
	)

	nearbyCmd := &cobra.Command{
		Use:   "nearby",
		Short: "Print the three halls closest to a location",
		Long: `Print the three halls closest to --lat/--lon.

Without coordinates the configured location provider is asked; when it has
no answer the center of the Netherlands is used.`,
		Args: cobra.NoArgs,
		RunE: c.closing(c.nearby),
	}
	nearbyCmd.Flags().Float64("lat", 0, "latitude of the origin")
	nearbyCmd.Flags().Float64("lon", 0, "longitude of the origin")
	nearbyCmd.MarkFlagsRequiredTogether("lat", "lon")

	searchCmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search halls by name, city or province",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.closing(c.search),
	}
	searchCmd.Flags().Bool("favorites", false, "only show favorite halls")

	root.AddCommand(
		&cobra.Command{
			Use:   "init-schema",
			Short: "Create the database tables",
			Args:  cobra.NoArgs,
			RunE:  c.closing(c.initSchema),
		},
		&cobra.Command{
			Use:   "seed-halls FILE",
			Short: "Store a halls JSON document as the offline snapshot",
			Args:  cobra.ExactArgs(1),
			RunE:  c.closing(c.seedHalls),
		},
		favoritesCmd,
		nearbyCmd,
		searchCmd,
	)

	return root
}

// initSchema relies on app.Build, which opens the configured databases and
// creates their tables.
func (c *cli) initSchema(cmd *cobra.Command, args []string) error {
	cfg := c.app.Config
	switch {
	case cfg.FavoritesStore == "postgres":
		fmt.Fprintln(cmd.OutOrStdout(), "Schema ready (postgres).")
	case cfg.FavoritesStore == "sqlite" || cfg.HallsSnapshot:
		fmt.Fprintf(cmd.OutOrStdout(), "Schema ready (sqlite %s).\n", cfg.DBPath)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "No SQL storage configured; nothing to do.")
	}
	return nil
}

func (c *cli) seedHalls(cmd *cobra.Command, args []string) error {
	if c.app.Snapshot == nil {
		return errors.New("seed halls: HALLS_SNAPSHOT is disabled")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("seed halls: open %q: %w", args[0], err)
	}
	defer f.Close()

	halls, err := source.DecodeHalls(f)
	if err != nil {
		return fmt.Errorf("seed halls: %w", err)
	}
	if err := c.app.Snapshot.SaveHalls(cmd.Context(), halls); err != nil {
		return fmt.Errorf("seed halls: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d halls.\n", len(halls))
	return nil
}

func (c *cli) favoritesList(cmd *cobra.Command, args []string) error {
	for _, name := range c.app.Favorites.Set().Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func (c *cli) favoritesToggle(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("favorites toggle: name is empty")
	}

	isFav, _ := c.app.Favorites.Toggle(cmd.Context(), name)
	if isFav {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q to favorites.\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from favorites.\n", name)
	}
	return nil
}

func (c *cli) nearby(cmd *cobra.Command, args []string) error {
	locator := c.app.Locator
	if cmd.Flags().Changed("lat") {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		origin := domain.Coordinates{Lat: lat, Lon: lon}
		if !origin.Valid() {
			return fmt.Errorf("nearby: coordinates out of range: %v,%v", lat, lon)
		}
		locator = location.Fixed{Coordinates: origin}
	}

	res := services.NearbyHalls(cmd.Context(), c.app.Catalog, locator, c.log)

	out := cmd.OutOrStdout()
	suffix := ""
	if res.Origin.Fallback {
		suffix = " (fallback)"
	}
	fmt.Fprintf(out, "From %.4f, %.4f%s\n", res.Origin.Coordinates.Lat, res.Origin.Coordinates.Lon, suffix)
	for i, h := range res.Halls {
		fmt.Fprintf(out, "%d. %s, %s  %.1f km  rating %.1f\n", i+1, h.Name, h.City, h.DistanceKm, h.Rating)
	}
	return nil
}

func (c *cli) search(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	onlyFavorites, _ := cmd.Flags().GetBool("favorites")

	favs := c.app.Favorites.Set()
	halls := services.ListHalls(cmd.Context(), c.app.Catalog, favs, query, onlyFavorites)
	printHalls(cmd.OutOrStdout(), halls, favs)
	return nil
}

func printHalls(w io.Writer, halls []domain.Hall, favs domain.FavoriteSet) {
	fmt.Fprintf(w, "%d halls found\n", len(halls))
	for _, h := range halls {
		mark := " "
		if favs.Contains(h.Name) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s, %s (%s)\n", mark, h.Name, h.City, h.Province)
	}
}
