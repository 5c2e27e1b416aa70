package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/jstrick/dojo/internal/constants"
	"github.com/jstrick/dojo/internal/utils"
)

type HabitCmd struct {
	Add  HabitAddCmd  `cmd:"" help:"Add a new habit."`
	Log  HabitLogCmd  `cmd:"" help:"Record a pass/fail status for a habit."`
	List HabitListCmd `cmd:"" help:"List all habits with current streaks."`
	Show HabitShowCmd `cmd:"" help:"Show details for a habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Habits.Add(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (started %s)\n", habit.Name, habit.StartDate)
	return nil
}

type HabitLogCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Status string `arg:"" help:"Status to record (pass|fail)."`
	Date   string `short:"d" help:"Date to record (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	habit, err := ctx.Habits.RecordStatus(c.Name, constants.Status(c.Status), date)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s for %s on %s (current streak: %d)\n",
		c.Status, habit.Name, date, habit.CurrentStreak(time.Now()))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Habits.GetAll()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	now := time.Now()
	fmt.Println("Habits:")
	for _, habit := range habits {
		fmt.Printf("  %-24s streak %-4d started %s, %d day(s) recorded\n",
			habit.Name, habit.CurrentStreak(now), habit.StartDate, len(habit.Streaks))
	}
	return nil
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	habit, ok := ctx.Habits.GetByName(c.Name)
	if !ok {
		return fmt.Errorf("habit not found: %s", c.Name)
	}

	fmt.Printf("Habit: %s\n", habit.Name)
	fmt.Printf("Started: %s\n", habit.StartDate)
	fmt.Printf("Current streak: %d\n", habit.CurrentStreak(time.Now()))

	if len(habit.Streaks) == 0 {
		fmt.Println("No days recorded yet")
		return nil
	}

	days := make([]string, 0, len(habit.Streaks))
	for day := range habit.Streaks {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Println("History:")
	for _, day := range days {
		fmt.Printf("  %s  %s\n", day, habit.Streaks[day])
	}
	return nil
}
