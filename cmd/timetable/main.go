// Package main provides a CLI that converts a timetable workbook into per-group schedules.
package main

import (
	"context"
	"fmt"
	"os"

	"timetable-api/config"
	"timetable-api/models"
	"timetable-api/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	outputDir string
	groupName string
	pretty    bool
	workers   int
	headerRow int
	nameWidth int
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Convert a timetable workbook into per-group weekly schedules",
	}
	rootCmd.PersistentFlags().IntVar(&headerRow, "header-row", cfg.HeaderRow, "Row with group names (0-based)")
	rootCmd.PersistentFlags().IntVar(&nameWidth, "name-width", cfg.GroupNameWidth, "Length of a group name in characters")

	parseCmd := &cobra.Command{
		Use:   "parse [input.xlsx|input.xls]",
		Short: "Parse the workbook and write one JSON file per group",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout)")
	parseCmd.Flags().StringVar(&groupName, "group", "", "Only this group")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	parseCmd.Flags().IntVar(&workers, "workers", cfg.ParseWorkers, "Groups parsed in parallel")

	groupsCmd := &cobra.Command{
		Use:   "groups [input.xlsx|input.xls]",
		Short: "List groups found in the workbook header",
		Args:  cobra.ExactArgs(1),
		RunE:  runGroups,
	}

	rootCmd.AddCommand(parseCmd, groupsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openGrid(parser *services.ParserService, inputPath string) (services.CellGrid, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}
	defer file.Close()
	return parser.OpenGrid(file, inputPath)
}

func runParse(cmd *cobra.Command, args []string) error {
	parser := services.NewParserService(headerRow, nameWidth, workers)
	grid, err := openGrid(parser, args[0])
	if err != nil {
		return err
	}

	groups, err := parser.Groups(grid)
	if err != nil {
		return err
	}
	if groupName != "" {
		groups = filterGroups(groups, groupName)
		if len(groups) == 0 {
			return fmt.Errorf("group %s not found", groupName)
		}
	}

	schedules, err := parser.BuildAll(context.Background(), grid, groups)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if outputDir != "" {
		return parser.Publish(context.Background(), schedules, &services.DirSink{Dir: outputDir, Pretty: pretty})
	}

	for _, schedule := range schedules {
		data, err := services.EncodeSchedule(schedule, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}

func runGroups(cmd *cobra.Command, args []string) error {
	parser := services.NewParserService(headerRow, nameWidth, 1)
	grid, err := openGrid(parser, args[0])
	if err != nil {
		return err
	}

	groups, err := parser.Groups(grid)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", group.Name, group.Column)
	}
	return nil
}

func filterGroups(groups []models.Group, name string) []models.Group {
	for _, group := range groups {
		if group.Name == name {
			return []models.Group{group}
		}
	}
	return nil
}
