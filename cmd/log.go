package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
	"github.com/xolan/pawlog/internal/cli/handlers"
	"github.com/xolan/pawlog/internal/entry"
)

// logFlags holds the detail flags of the log command
type logFlags struct {
	walkStart, walkEnd, walkDistance, walkLocation string
	poopWhere, pishWhere                           string
	playWith, playDetails                          string
	sleepStart, sleepEnd, sleepLocation            string
	mealTime, mealFood                             string
	otherDescription                               string
	notes                                          string
}

var logOpts logFlags

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log <activity>...",
	Short: "Log one or more activities",
	Long: `Log one or more activities with the current date and time.

Activities: walk, poop, pish, play, sleep, meal, other
Several activities can be given as separate arguments or comma separated.
Detail flags only apply to activities that are selected.

Examples:
  pawlog log walk poop --walk-distance 2.5 --walk-location "Riverside"
  pawlog log pish --pish-where backyard
  pawlog log play --play-with yes --play-details "fetch with Bella"
  pawlog log meal --meal-time 18:00 --meal-food "kibble" --notes "ate slowly"`,
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(entry.Kinds))
		for _, k := range entry.Kinds {
			names = append(names, string(k))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		handlers.LogActivity(cmd.Context(), cli.GetDeps(), args, logOpts.details(), logOpts.notes)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	f := logCmd.Flags()
	f.StringVar(&logOpts.walkStart, "walk-start", "", "walk start time (HH:MM)")
	f.StringVar(&logOpts.walkEnd, "walk-end", "", "walk end time (HH:MM)")
	f.StringVar(&logOpts.walkDistance, "walk-distance", "", "walk distance in km (e.g., 2.5)")
	f.StringVar(&logOpts.walkLocation, "walk-location", "", "where the walk went")
	f.StringVar(&logOpts.poopWhere, "poop-where", "", "where the poop happened: walk or backyard (default walk)")
	f.StringVar(&logOpts.pishWhere, "pish-where", "", "where the pish happened: walk or backyard (default walk)")
	f.StringVar(&logOpts.playWith, "play-with", "", "played with other dogs: yes or no (default no)")
	f.StringVar(&logOpts.playDetails, "play-details", "", "what the play was")
	f.StringVar(&logOpts.sleepStart, "sleep-start", "", "sleep start time (HH:MM)")
	f.StringVar(&logOpts.sleepEnd, "sleep-end", "", "sleep end time (HH:MM)")
	f.StringVar(&logOpts.sleepLocation, "sleep-location", "", "where the dog slept")
	f.StringVar(&logOpts.mealTime, "meal-time", "", "meal time (HH:MM)")
	f.StringVar(&logOpts.mealFood, "meal-food", "", "what was eaten")
	f.StringVar(&logOpts.otherDescription, "other-description", "", "description of the other activity")
	f.StringVar(&logOpts.notes, "notes", "", "free text notes for the entry")

	for _, name := range []string{"poop-where", "pish-where"} {
		_ = logCmd.RegisterFlagCompletionFunc(name, fixedCompletion(entry.WhereWalk, entry.WhereBackyard))
	}
	_ = logCmd.RegisterFlagCompletionFunc("play-with", fixedCompletion(entry.Yes, entry.No))
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// details builds a detail record for every kind that has at least one flag set
func (o logFlags) details() entry.Details {
	var d entry.Details
	if o.walkStart != "" || o.walkEnd != "" || o.walkDistance != "" || o.walkLocation != "" {
		d.Walk = &entry.WalkDetails{Start: o.walkStart, End: o.walkEnd, Distance: o.walkDistance, Location: o.walkLocation}
	}
	if o.poopWhere != "" {
		d.Poop = &entry.EliminationDetails{Location: o.poopWhere}
	}
	if o.pishWhere != "" {
		d.Pish = &entry.EliminationDetails{Location: o.pishWhere}
	}
	if o.playWith != "" || o.playDetails != "" {
		d.Play = &entry.PlayDetails{WithOtherDogs: o.playWith, Details: o.playDetails}
	}
	if o.sleepStart != "" || o.sleepEnd != "" || o.sleepLocation != "" {
		d.Sleep = &entry.SleepDetails{Start: o.sleepStart, End: o.sleepEnd, Location: o.sleepLocation}
	}
	if o.mealTime != "" || o.mealFood != "" {
		d.Meal = &entry.MealDetails{Time: o.mealTime, Food: o.mealFood}
	}
	if o.otherDescription != "" {
		d.Other = &entry.OtherDetails{Description: o.otherDescription}
	}
	return d
}
