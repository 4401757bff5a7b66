package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reviews_carousel/internal/adapters/fallback"
	"reviews_carousel/internal/adapters/places"
	"reviews_carousel/internal/app"
	"reviews_carousel/internal/render"
)

func newReviewsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Preview reviews in the terminal",
	}

	var (
		page  int
		width int
	)
	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "Load reviews and print one carousel page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return usageError{msg: "--page must be 1 or greater"}
			}
			if width <= 0 {
				return usageError{msg: "--width must be positive"}
			}
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			settings := app.NewSettings(b.Settings)
			loader := app.NewLoader(settings,
				places.New(e.cfg.PlacesBase, e.cfg.PlacesRPS),
				fallback.New(0),
				b.Cache(), e.cfg.CacheTTL)
			themes := app.NewThemeService(cmd.Context(), b.Settings)
			doc := render.NewDocument()
			w := app.NewWidget(loader, settings, themes, doc, e.cfg.Breakpoint)

			w.Resize(width)
			res := w.Refresh(cmd.Context())
			if res.Err != nil {
				return fmt.Errorf("loading reviews: %w", res.Err)
			}
			if page > 1 && !w.GoTo(page-1) {
				return usageError{msg: fmt.Sprintf("page %d out of range (1-%d)", page, w.View().TotalPages)}
			}
			printSnapshot(cmd.OutOrStdout(), doc.Snapshot(), string(res.Origin))
			return nil
		},
	}
	pageCmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	pageCmd.Flags().IntVar(&width, "width", 1024, "viewport width in pixels")
	cmd.AddCommand(pageCmd)
	return cmd
}

func printSnapshot(w io.Writer, s render.Snapshot, origin string) {
	if s.Error != "" {
		fmt.Fprintln(w, s.Error)
		return
	}
	fmt.Fprintf(w, "Page %d/%d (%s)\n\n", s.PageIndex+1, s.TotalPages, origin)
	for _, c := range s.Cards {
		fmt.Fprintf(w, "%s  %s  %s\n", c.Stars, c.Author, c.Posted)
		fmt.Fprintf(w, "  %s\n\n", c.Body)
	}
	dots := make([]string, 0, len(s.Indicators))
	for _, in := range s.Indicators {
		if in.Active {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	fmt.Fprintln(w, strings.Join(dots, " "))
	fmt.Fprintf(w, "%.1f %s  %d reviews\n", s.Summary.AverageRating, s.Summary.Stars, s.Summary.Count)
}
