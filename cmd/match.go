package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"marketplace/internal/config"
	"marketplace/internal/matcher"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/relevance"
)

// matchCommand constructs the 'match' subcommand that prints the ranked
// projects of a talent, the same listing the API serves.
func matchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Prints the projects matching a talent",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawUser, _ := cmd.Flags().GetString("user")
			userID, err := uuid.Parse(rawUser)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.Error(err))
			}

			query := matcher.MatchQuery{}
			query.Criteria.Phase, _ = cmd.Flags().GetString("phase")
			query.Criteria.RemoteOnly, _ = cmd.Flags().GetBool("remote-only")
			query.Criteria.MinScore, _ = cmd.Flags().GetInt("min-score")
			query.Limit, _ = cmd.Flags().GetUint("limit")
			if cmd.Flags().Changed("max-distance") {
				d, _ := cmd.Flags().GetFloat64("max-distance")
				query.Criteria.MaxDistanceKm = &d
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			matches, err := matcher.New(pgsql, matcher.NewOptions(cfg)).Matches(ctx, domain.UserID(userID), query)
			if err != nil {
				logger.Fatal(ctx, "could not list matches", zap.Error(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "SCORE\tDISTANCE\tPHASE\tREMOTE\tPROJECT\tTITLE")
			for _, m := range matches {
				distance := "-"
				if d, ok := m.Distance(); ok {
					distance = fmt.Sprintf("%.1f km", d)
				}
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\t%s\n",
					m.Score, distance, m.Phase, m.RemotePossible, m.Project.ID, m.Project.Title)
			}
			_ = w.Flush()
		},
	}

	cmd.Flags().String("user", "", "Talent user ID")
	cmd.Flags().String("phase", relevance.PhaseAll, "Project phase (idea, prototype, launch, growth or all)")
	cmd.Flags().Float64("max-distance", 0, "Maximum distance in km (defaults to the talent's radius)")
	cmd.Flags().Bool("remote-only", false, "Only list remote-friendly projects")
	cmd.Flags().Int("min-score", 0, "Minimum relevance score")
	cmd.Flags().Uint("limit", 0, "Maximum number of matches (defaults to the configured limit)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
