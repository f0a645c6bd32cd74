package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/KirkDiggler/diceduel/internal/services/game"
)

// Component custom IDs
const (
	ButtonDicePrefix = "diceduel_dice_"
	ButtonRoll       = "diceduel_roll"
	ButtonPlayAgain  = "diceduel_play_again"
	SelectPredict    = "diceduel_predict"
)

// Embed colors
const (
	colorSetup   = 0x5865f2
	colorRolling = 0xfee75c
	colorWin     = 0x57f287
	colorNear    = 0xeb8b34
	colorLoss    = 0xed4245
	colorError   = 0xff0000
)

var diceFaces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// diceFace returns the glyph for a single die value
func diceFace(value int) string {
	if value < 1 || value > len(diceFaces) {
		return "?"
	}
	return diceFaces[value-1]
}

// renderDice shows each die as its face followed by the value
func renderDice(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s %d", diceFace(v), v)
	}
	return strings.Join(parts, "  ")
}

func diceButtonID(count int) string {
	return ButtonDicePrefix + strconv.Itoa(count)
}

// parseDiceButtonID extracts the dice count from a dice button custom ID
func parseDiceButtonID(customID string) (int, bool) {
	raw, ok := strings.CutPrefix(customID, ButtonDicePrefix)
	if !ok {
		return 0, false
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return count, true
}

// renderStatsFields renders the cumulative stats shown on every board
func renderStatsFields(stats models.Stats, winRate int) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   "Wins",
			Value:  strconv.Itoa(stats.Wins),
			Inline: true,
		},
		{
			Name:   "Games",
			Value:  strconv.Itoa(stats.GamesPlayed),
			Inline: true,
		},
		{
			Name:   "Win Rate",
			Value:  fmt.Sprintf("%d%%", winRate),
			Inline: true,
		},
	}
}

func outcomeColor(outcome models.Outcome) int {
	switch outcome {
	case models.OutcomeExact:
		return colorWin
	case models.OutcomeOffByOne, models.OutcomeClose:
		return colorNear
	default:
		return colorLoss
	}
}

func predictionLabel(prediction string) string {
	if strings.TrimSpace(prediction) == "" {
		return "Not set"
	}
	return prediction
}

// renderBoardEmbed renders the embed for the current session state
func renderBoardEmbed(state *game.GetStateOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎲 Dice Duel",
	}

	var fields []*discordgo.MessageEmbedField

	switch {
	case state.State.IsResult() && state.LastRoll != nil:
		embed.Description = state.Message
		embed.Color = outcomeColor(state.LastRoll.Outcome)
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Roll", Value: renderDice(state.LastRoll.Values), Inline: false},
			&discordgo.MessageEmbedField{Name: "Total", Value: strconv.Itoa(state.LastRoll.Sum), Inline: true},
			&discordgo.MessageEmbedField{Name: "Prediction", Value: strconv.Itoa(state.LastRoll.Prediction), Inline: true},
		)
	case state.State.IsRolling():
		embed.Description = "Rolling the dice..."
		embed.Color = colorRolling
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Dice", Value: strconv.Itoa(state.DiceCount), Inline: true},
			&discordgo.MessageEmbedField{Name: "Prediction", Value: predictionLabel(state.Prediction), Inline: true},
		)
	default:
		embed.Description = fmt.Sprintf("Pick how many dice to roll and predict their total (%d-%d).", state.MinSum, state.MaxSum)
		embed.Color = colorSetup
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Dice", Value: strconv.Itoa(state.DiceCount), Inline: true},
			&discordgo.MessageEmbedField{Name: "Prediction", Value: predictionLabel(state.Prediction), Inline: true},
			&discordgo.MessageEmbedField{Name: "Range", Value: fmt.Sprintf("%d-%d", state.MinSum, state.MaxSum), Inline: true},
		)
	}

	embed.Fields = append(fields, renderStatsFields(state.Stats, state.WinRate)...)

	if state.Hint != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: state.Hint}
	}

	return embed
}

// predictionOptions lists every total reachable with the current dice
func predictionOptions(minSum, maxSum int, selected string) []discordgo.SelectMenuOption {
	selected = strings.TrimSpace(selected)

	options := make([]discordgo.SelectMenuOption, 0, maxSum-minSum+1)
	for sum := minSum; sum <= maxSum; sum++ {
		value := strconv.Itoa(sum)
		options = append(options, discordgo.SelectMenuOption{
			Label:   value,
			Value:   value,
			Default: value == selected,
		})
	}
	return options
}

// renderBoardComponents renders the controls available in the current state
func renderBoardComponents(state *game.GetStateOutput) []discordgo.MessageComponent {
	if state.State.IsResult() {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Play Again",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonPlayAgain,
						Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
					},
				},
			},
		}
	}

	rolling := state.State.IsRolling()

	diceButtons := make([]discordgo.MessageComponent, 0, models.MaxDiceCount)
	for count := models.MinDiceCount; count <= models.MaxDiceCount; count++ {
		style := discordgo.SecondaryButton
		if count == state.DiceCount {
			style = discordgo.PrimaryButton
		}

		label := fmt.Sprintf("%d Dice", count)
		if count == 1 {
			label = "1 Die"
		}

		diceButtons = append(diceButtons, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: diceButtonID(count),
			Disabled: rolling,
		})
	}

	minValues := 1
	predictSelect := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectPredict,
		Placeholder: fmt.Sprintf("Predict the total (%d-%d)", state.MinSum, state.MaxSum),
		MinValues:   &minValues,
		MaxValues:   1,
		Options:     predictionOptions(state.MinSum, state.MaxSum, state.Prediction),
		Disabled:    rolling,
	}

	rollLabel := "Roll"
	if rolling {
		rollLabel = "Rolling..."
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: diceButtons},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{predictSelect}},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    rollLabel,
					Style:    discordgo.SuccessButton,
					CustomID: ButtonRoll,
					Disabled: rolling,
					Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
				},
			},
		},
	}
}

// renderStatsEmbed renders the private stats summary
func renderStatsEmbed(state *game.GetStateOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  "📊 Your Dice Duel Stats",
		Color:  colorSetup,
		Fields: renderStatsFields(state.Stats, state.WinRate),
	}

	if state.Stats.GamesPlayed == 0 {
		embed.Description = "No games played yet. Use `/diceduel play` to start."
	}

	if state.Hint != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: state.Hint}
	}

	return embed
}

// renderErrorEmbed renders a blocking notice such as an invalid prediction
func renderErrorEmbed(title, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	}
}
