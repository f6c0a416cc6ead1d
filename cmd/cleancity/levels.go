package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cleancity/internal/config"
	"github.com/vovakirdan/cleancity/internal/model"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured streets",
	Long:  `Shows every street in play order with its timing and truck speed.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runLevels(cmd *cobra.Command, _ []string) {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Streets (%s):\n\n", src)
	fmt.Println(levelsTable(cfg))
	fmt.Println()
	fmt.Println("Run 'cleancity play --level <#>' to start on a street.")
}

// levelsTable renders the level list.
func levelsTable(cfg config.Config) *table.Table {
	rows := make([][]string, 0, len(cfg.Levels))
	for i, l := range cfg.GameLevels() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			l.Name,
			fmt.Sprintf("%.0fs", l.TotalTime),
			strconv.Itoa(l.TrashCount),
			fmt.Sprintf("%.0f", l.TrashSize),
			fmt.Sprintf("%.0f", l.PlayerSpeed),
			fmt.Sprintf("%.0fx%.0f", l.TruckWidth, l.TruckHeight),
			fmt.Sprintf("%.1f", model.TruckSpeed(cfg.World.Width, l)),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "STREET", "TIME", "TRASH", "SIZE", "SPEED", "TRUCK", "TRUCK SPEED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
