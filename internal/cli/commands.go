package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	logicv1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

// NewRootCommand builds the travelctl command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "travelctl",
		Short:         "AI Travel Planner client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newRegisterCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newQuotaCommand(app),
		newProfileCommand(app),
		newNavCommand(app),
		newPlanCommand(app),
		newWriteCommand(app),
		newChatCommand(app),
		newThemeCommand(app),
	)
	return root
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.Login(cmd.Context(), domain.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				if errors.Is(err, logicv1.ErrInvalidCredentials) {
					return fmt.Errorf("wrong email or password")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(app *App) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.Register(cmd.Context(), domain.RegisterRequest{
				Email:    email,
				Password: password,
				Name:     name,
			})
			if err != nil {
				if errors.Is(err, logicv1.ErrUserExists) {
					return fmt.Errorf("email %s is already registered", email)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.FetchCurrentUser(cmd.Context())
			user := app.Session.User()
			if user == nil {
				return fmt.Errorf("not logged in")
			}
			tier := user.MembershipLevel
			if tier == "" {
				tier = domain.MembershipFree
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> [%s]\n", user.Name, user.Email, tier)
			return nil
		},
	}
}

func newQuotaCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the usage quota",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}
			app.Session.FetchQuota(cmd.Context())
			quota := app.Session.Quota()
			if quota == nil {
				return fmt.Errorf("quota unavailable")
			}
			if quota.Unlimited {
				fmt.Fprintln(cmd.OutOrStdout(), "Plans: unlimited")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Plans: %d of %d used, %d remaining\n",
					quota.PlanUsageCount, quota.PlanLimit, app.Session.RemainingPlans())
			}
			return nil
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	var name, city, country, bio string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.ProfileUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("city") {
				upd.City = &city
			}
			if cmd.Flags().Changed("country") {
				upd.Country = &country
			}
			if cmd.Flags().Changed("bio") {
				upd.Bio = &bio
			}
			user, err := app.Session.UpdateProfile(cmd.Context(), upd)
			if err != nil {
				if errors.Is(err, logicv1.ErrNotAuthenticated) {
					return fmt.Errorf("not logged in")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&country, "country", "", "country")
	cmd.Flags().StringVar(&bio, "bio", "", "bio")
	return cmd
}

func newNavCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nav <path>",
		Short: "Check where navigating to a route would land",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, ok := domain.FindRoute(args[0])
			if !ok {
				return fmt.Errorf("unknown route %q", args[0])
			}
			decision := app.Guard.Authorize(cmd.Context(), route)
			if decision.Allowed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: allowed\n", route.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: redirect to %s\n", route.Path, decision.RedirectTo)
			}
			return nil
		},
	}
}

func newPlanCommand(app *App) *cobra.Command {
	plan := &cobra.Command{
		Use:   "plan",
		Short: "Manage itineraries",
	}

	var title, destination, style string
	var days int
	var budget float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.Planner.Create(cmd.Context(), domain.ItineraryCreateRequest{
				Title:       title,
				Destination: destination,
				Days:        days,
				Budget:      budget,
				TravelStyle: style,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created itinerary #%d: %s (%d days in %s)\n",
				it.ID, it.Title, it.Days, it.Destination)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "itinerary title")
	create.Flags().StringVar(&destination, "destination", "", "destination")
	create.Flags().IntVar(&days, "days", 3, "trip length in days")
	create.Flags().Float64Var(&budget, "budget", 0, "budget")
	create.Flags().StringVar(&style, "style", "", "travel style")
	create.MarkFlagRequired("title")
	create.MarkFlagRequired("destination")

	list := &cobra.Command{
		Use:   "list",
		Short: "List itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, it := range app.Planner.Itineraries() {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s — %s, %d days\n",
					it.ID, it.Title, it.Destination, it.Days)
			}
			return nil
		},
	}

	var planID int64
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a day-by-day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Planner.GeneratePlan(cmd.Context(), planID, domain.PlanPreferences{Days: days})
			if err != nil {
				return err
			}
			for _, day := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", day.Title)
				for _, act := range day.Activities {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s — %s\n", act.Time, act.Title, act.Description)
				}
			}
			return nil
		},
	}
	generate.Flags().Int64Var(&planID, "id", 0, "itinerary id")
	generate.Flags().IntVar(&days, "days", 0, "day count override")
	generate.MarkFlagRequired("id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid itinerary id %q", args[0])
			}
			return app.Planner.Delete(cmd.Context(), id)
		},
	}

	plan.AddCommand(create, list, generate, del)
	return plan
}

func newWriteCommand(app *App) *cobra.Command {
	var platform, keywords string
	var emotion int
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Generate social copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kw []string
			for _, k := range strings.Split(keywords, ",") {
				if k = strings.TrimSpace(k); k != "" {
					kw = append(kw, k)
				}
			}
			result, err := app.Copywriter.Generate(cmd.Context(), domain.CopywritingRequest{
				Platform:     platform,
				Keywords:     kw,
				EmotionLevel: emotion,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}
	cmd.Flags().StringVar(&platform, "platform", domain.PlatformXiaohongshu, "target platform")
	cmd.Flags().StringVar(&keywords, "keywords", "", "comma-separated keywords")
	cmd.Flags().IntVar(&emotion, "emotion", 50, "emotion level 0-100")
	return cmd
}

func newChatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the travel assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := app.Chat.SendMessage(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
			return nil
		},
	}
}

func newThemeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|system]",
		Short: "Show or set the UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.Settings.Theme())
				return nil
			}
			if err := app.Settings.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	}
}
