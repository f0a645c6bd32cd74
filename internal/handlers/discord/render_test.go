package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/KirkDiggler/diceduel/internal/services/game"
)

func setupState() *game.GetStateOutput {
	return &game.GetStateOutput{
		State:     models.GameStateSetup,
		DiceCount: 2,
		MinSum:    2,
		MaxSum:    12,
	}
}

func resultState() *game.GetStateOutput {
	return &game.GetStateOutput{
		State:      models.GameStateResult,
		DiceCount:  2,
		Prediction: "7",
		MinSum:     2,
		MaxSum:     12,
		LastRoll: &models.RollResult{
			ID:         "roll-1",
			Values:     []int{3, 4},
			Sum:        7,
			Prediction: 7,
			Outcome:    models.OutcomeExact,
			RolledAt:   time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
		},
		Message: "🎉 Perfect! You guessed it!",
		Stats:   models.Stats{GamesPlayed: 4, Wins: 3},
		WinRate: 75,
		Hint:    "💡 Tip",
	}
}

func fieldValue(t *testing.T, embed *discordgo.MessageEmbed, name string) string {
	t.Helper()
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %q not found", name)
	return ""
}

func TestDiceFace(t *testing.T) {
	assert.Equal(t, "⚀", diceFace(1))
	assert.Equal(t, "⚅", diceFace(6))
	assert.Equal(t, "?", diceFace(0))
	assert.Equal(t, "?", diceFace(7))
	assert.Equal(t, "⚂ 3  ⚄ 5", renderDice([]int{3, 5}))
}

func TestParseDiceButtonID(t *testing.T) {
	for count := models.MinDiceCount; count <= models.MaxDiceCount; count++ {
		got, ok := parseDiceButtonID(diceButtonID(count))
		assert.True(t, ok)
		assert.Equal(t, count, got)
	}

	_, ok := parseDiceButtonID(ButtonRoll)
	assert.False(t, ok)

	_, ok = parseDiceButtonID(ButtonDicePrefix + "x")
	assert.False(t, ok)
}

func TestRenderBoardEmbedSetup(t *testing.T) {
	embed := renderBoardEmbed(setupState())

	assert.Equal(t, colorSetup, embed.Color)
	assert.Contains(t, embed.Description, "(2-12)")
	assert.Equal(t, "2", fieldValue(t, embed, "Dice"))
	assert.Equal(t, "Not set", fieldValue(t, embed, "Prediction"))
	assert.Equal(t, "2-12", fieldValue(t, embed, "Range"))
	assert.Equal(t, "0", fieldValue(t, embed, "Wins"))
	assert.Equal(t, "0", fieldValue(t, embed, "Games"))
	assert.Equal(t, "0%", fieldValue(t, embed, "Win Rate"))
	assert.Nil(t, embed.Footer)
}

func TestRenderBoardEmbedResult(t *testing.T) {
	embed := renderBoardEmbed(resultState())

	assert.Equal(t, colorWin, embed.Color)
	assert.Equal(t, "🎉 Perfect! You guessed it!", embed.Description)
	assert.Equal(t, "⚂ 3  ⚃ 4", fieldValue(t, embed, "Roll"))
	assert.Equal(t, "7", fieldValue(t, embed, "Total"))
	assert.Equal(t, "7", fieldValue(t, embed, "Prediction"))
	assert.Equal(t, "3", fieldValue(t, embed, "Wins"))
	assert.Equal(t, "4", fieldValue(t, embed, "Games"))
	assert.Equal(t, "75%", fieldValue(t, embed, "Win Rate"))
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "💡 Tip", embed.Footer.Text)
}

func TestOutcomeColor(t *testing.T) {
	assert.Equal(t, colorWin, outcomeColor(models.OutcomeExact))
	assert.Equal(t, colorNear, outcomeColor(models.OutcomeOffByOne))
	assert.Equal(t, colorNear, outcomeColor(models.OutcomeClose))
	assert.Equal(t, colorLoss, outcomeColor(models.OutcomeFar))
}

func TestPredictionOptions(t *testing.T) {
	options := predictionOptions(3, 18, " 10 ")

	require.Len(t, options, 16)
	assert.Equal(t, "3", options[0].Value)
	assert.Equal(t, "18", options[15].Value)

	for _, o := range options {
		assert.Equal(t, o.Value == "10", o.Default, o.Value)
	}
}

func TestRenderBoardComponentsSetup(t *testing.T) {
	state := setupState()
	state.Prediction = "5"

	components := renderBoardComponents(state)
	require.Len(t, components, 3)

	diceRow := components[0].(discordgo.ActionsRow)
	require.Len(t, diceRow.Components, 3)
	for i, c := range diceRow.Components {
		button := c.(discordgo.Button)
		assert.Equal(t, diceButtonID(i+1), button.CustomID)
		assert.False(t, button.Disabled)
		if i+1 == state.DiceCount {
			assert.Equal(t, discordgo.PrimaryButton, button.Style)
		} else {
			assert.Equal(t, discordgo.SecondaryButton, button.Style)
		}
	}

	selectRow := components[1].(discordgo.ActionsRow)
	menu := selectRow.Components[0].(discordgo.SelectMenu)
	assert.Equal(t, SelectPredict, menu.CustomID)
	assert.Len(t, menu.Options, 11)
	assert.False(t, menu.Disabled)

	rollRow := components[2].(discordgo.ActionsRow)
	roll := rollRow.Components[0].(discordgo.Button)
	assert.Equal(t, ButtonRoll, roll.CustomID)
	assert.False(t, roll.Disabled)
}

func TestRenderBoardComponentsRolling(t *testing.T) {
	state := setupState()
	state.State = models.GameStateRolling

	components := renderBoardComponents(state)
	require.Len(t, components, 3)

	menu := components[1].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.True(t, menu.Disabled)

	roll := components[2].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.True(t, roll.Disabled)
	assert.Equal(t, "Rolling...", roll.Label)
}

func TestRenderBoardComponentsResult(t *testing.T) {
	components := renderBoardComponents(resultState())
	require.Len(t, components, 1)

	button := components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, ButtonPlayAgain, button.CustomID)
}

func TestRenderStatsEmbed(t *testing.T) {
	embed := renderStatsEmbed(setupState())
	assert.Contains(t, embed.Description, "No games played yet")

	embed = renderStatsEmbed(resultState())
	assert.Empty(t, embed.Description)
	assert.Equal(t, "75%", fieldValue(t, embed, "Win Rate"))
	require.NotNil(t, embed.Footer)
}
