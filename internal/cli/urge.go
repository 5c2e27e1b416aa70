package cli

import (
	"fmt"
	"time"

	"github.com/jstrick/dojo/internal/models"
)

type UrgeCmd struct {
	Start UrgeStartCmd `cmd:"" help:"Start an urge-surfing session."`
	Note  UrgeNoteCmd  `cmd:"" help:"Add a sensation note to an active session."`
	End   UrgeEndCmd   `cmd:"" help:"End an active session."`
	List  UrgeListCmd  `cmd:"" help:"List urge-surfing sessions."`
	Show  UrgeShowCmd  `cmd:"" help:"Show a session."`
}

type UrgeStartCmd struct {
	Type      string `arg:"" help:"Urge category (e.g. smoking, snacking)."`
	Intensity int    `short:"i" required:"" help:"Initial intensity (1-10)."`
}

func (c *UrgeStartCmd) Run(ctx *Context) error {
	entry, err := ctx.Urges.Start(c.Type, c.Intensity)
	if err != nil {
		return err
	}
	fmt.Printf("Started urge session %s (%s, intensity %d)\n",
		entry.EntryID, entry.UrgeType, entry.InitialIntensity)
	return nil
}

type UrgeNoteCmd struct {
	ID   string `arg:"" help:"Session id."`
	Note string `arg:"" help:"Sensation note."`
}

func (c *UrgeNoteCmd) Run(ctx *Context) error {
	entry, err := ctx.Urges.AddSensation(c.ID, c.Note)
	if err != nil {
		return err
	}
	fmt.Printf("Noted sensation (%d so far)\n", len(entry.SensationsLog))
	return nil
}

type UrgeEndCmd struct {
	ID string `arg:"" help:"Session id."`
}

func (c *UrgeEndCmd) Run(ctx *Context) error {
	entry, err := ctx.Urges.End(c.ID)
	if err != nil {
		return err
	}
	if secs, ok := entry.DurationSeconds(); ok {
		fmt.Printf("Ended urge session %s after %s\n", entry.EntryID, formatSeconds(secs))
	} else {
		fmt.Printf("Ended urge session %s\n", entry.EntryID)
	}
	return nil
}

type UrgeListCmd struct {
	Active bool `help:"Show only active sessions."`
}

func (c *UrgeListCmd) Run(ctx *Context) error {
	var logs []models.UrgeLogEntry
	if c.Active {
		logs = ctx.Urges.GetActive()
	} else {
		logs = ctx.Urges.GetAll()
	}

	if len(logs) == 0 {
		fmt.Println("No urge sessions found")
		return nil
	}

	fmt.Println("Urge sessions:")
	for _, entry := range logs {
		state := "active"
		if secs, ok := entry.DurationSeconds(); ok {
			state = formatSeconds(secs)
		} else if entry.Active() {
			state = fmt.Sprintf("active for %s", entry.Elapsed(time.Now()).Truncate(time.Second))
		}
		fmt.Printf("  %s  %-16s intensity %-2d  %d note(s)  %s\n",
			entry.EntryID, entry.UrgeType, entry.InitialIntensity, len(entry.SensationsLog), state)
	}
	return nil
}

type UrgeShowCmd struct {
	ID string `arg:"" help:"Session id."`
}

func (c *UrgeShowCmd) Run(ctx *Context) error {
	entry, ok := ctx.Urges.GetByID(c.ID)
	if !ok {
		return fmt.Errorf("urge session not found: %s", c.ID)
	}

	fmt.Printf("Session: %s\n", entry.EntryID)
	fmt.Printf("Type: %s (initial intensity %d)\n", entry.UrgeType, entry.InitialIntensity)
	fmt.Printf("Started: %s\n", entry.StartTime)
	if entry.EndTime != nil {
		fmt.Printf("Ended: %s\n", *entry.EndTime)
		if secs, ok := entry.DurationSeconds(); ok {
			fmt.Printf("Duration: %s\n", formatSeconds(secs))
		}
	} else {
		fmt.Println("Still active")
	}

	if len(entry.SensationsLog) > 0 {
		fmt.Println("Sensations:")
		for _, s := range entry.SensationsLog {
			fmt.Printf("  %s  %s\n", s.Timestamp, s.Note)
		}
	}
	return nil
}

func formatSeconds(secs int) string {
	return (time.Duration(secs) * time.Second).String()
}
