package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kmckay/chipmult/internal/deck"
	"github.com/kmckay/chipmult/internal/game"
)

type CLI struct {
	Cards     []string `arg:"" help:"Played cards in play order, e.g. 'Kh:foil 6c 3d Ks Kh'" required:"true"`
	Held      []string `short:"H" help:"Cards held in hand but not played (steel cards matter)"`
	Abilities []string `short:"a" name:"ability" help:"Active abilities, e.g. four_fingers"`
	Seed      string   `short:"s" default:"CLISEED" help:"Run seed driving lucky card rolls"`
	Levels    []string `short:"l" name:"level" help:"Hand type levels, e.g. 'Pair=3' (repeatable)"`
}

var (
	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	played, err := parseCardArgs(cli.Cards)
	if err != nil {
		log.Fatal("Invalid played cards", "error", err)
	}
	held, err := parseCardArgs(cli.Held)
	if err != nil {
		log.Fatal("Invalid held cards", "error", err)
	}

	abilities := game.AbilitySet{}
	for _, name := range cli.Abilities {
		ability, err := game.ParseAbility(name)
		if err != nil {
			log.Fatal("Invalid ability", "error", err)
		}
		abilities[ability] = true
	}

	tracker := game.NewLevelTracker()
	if err := applyLevels(tracker, cli.Levels); err != nil {
		log.Fatal("Invalid level", "error", err)
	}

	handType, scoring := game.Classify(played, abilities)
	result := game.Evaluate(handType, scoring, held, abilities, tracker, cli.Seed)

	fmt.Printf("%s (level %d)\n", handStyle.Render(handType.String()), tracker.Level(handType))

	scoringCards := make([]string, len(scoring))
	for i, c := range scoring {
		scoringCards[i] = c.String()
	}
	fmt.Printf("Scoring: %s\n", cardStyle.Render(strings.Join(scoringCards, " ")))

	fmt.Printf("%d × %s = %s\n",
		result.Chips,
		formatMult(result.Mult),
		scoreStyle.Render(formatMult(result.Score())))

	ctx.Exit(0)
}

// parseCardArgs accepts one card per argument or several in a quoted string
func parseCardArgs(args []string) ([]deck.Card, error) {
	return deck.ParseCards(strings.Join(args, " "))
}

// applyLevels plays level cards until each named hand type reaches the
// requested level
func applyLevels(tracker *game.LevelTracker, specs []string) error {
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("expected HAND=N, got %q", spec)
		}
		handType, err := game.ParseHandType(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || level < 1 {
			return fmt.Errorf("invalid level in %q", spec)
		}
		for tracker.Level(handType) < level {
			tracker.ApplyLevelCard(handType)
		}
	}
	return nil
}

func formatMult(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "" {
		return "0"
	}
	return s
}
