package cli

import (
	"fmt"
	"strings"

	"github.com/jstrick/dojo/internal/journal"
	"github.com/jstrick/dojo/internal/models"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a new journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries."`
	Show   JournalShowCmd   `cmd:"" help:"Show a journal entry."`
	Prompt JournalPromptCmd `cmd:"" help:"Print a journaling prompt."`
}

type JournalAddCmd struct {
	Text   string `arg:"" help:"Entry text."`
	Prompt string `short:"p" help:"Catalog prompt id to write against."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("entry text must not be empty")
	}

	var promptID *string
	if c.Prompt != "" {
		promptID = &c.Prompt
	}

	entry, err := ctx.Journal.AddEntry(c.Text, promptID)
	if err != nil {
		return err
	}
	fmt.Printf("Added journal entry %s for %s\n", entry.EntryID, entry.DateISO)
	return nil
}

type JournalListCmd struct {
	Date string `short:"d" help:"Only show entries for this date (YYYY-MM-DD)."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	var entries []models.JournalEntry
	if c.Date != "" {
		var err error
		entries, err = ctx.Journal.GetByDate(c.Date)
		if err != nil {
			return err
		}
	} else {
		entries = ctx.Journal.GetAll()
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries found")
		return nil
	}

	fmt.Println("Journal entries:")
	for _, entry := range entries {
		fmt.Printf("  %s  %s  %s\n", entry.DateISO, entry.EntryID, snippet(entry.UserText, 48))
	}
	return nil
}

type JournalShowCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	entry, ok := ctx.Journal.GetByID(c.ID)
	if !ok {
		return fmt.Errorf("journal entry not found: %s", c.ID)
	}

	fmt.Printf("Entry: %s\n", entry.EntryID)
	fmt.Printf("Date: %s\n", entry.DateISO)
	if entry.PromptID != nil {
		fmt.Printf("Prompt (%s): %s\n", *entry.PromptID, entry.PromptTextSnapshot)
	}
	fmt.Printf("\n%s\n", entry.UserText)
	return nil
}

type JournalPromptCmd struct {
	ID string `help:"Specific prompt id. Random when omitted."`
}

func (c *JournalPromptCmd) Run(ctx *Context) error {
	var (
		prompt models.Prompt
		ok     bool
	)
	if c.ID != "" {
		prompt, ok = journal.PromptByID(c.ID)
		if !ok {
			return fmt.Errorf("prompt not found: %s", c.ID)
		}
	} else {
		prompt, ok = journal.RandomPrompt()
		if !ok {
			fmt.Println("No prompts available")
			return nil
		}
	}

	fmt.Printf("[%s] %s\n", prompt.Type, prompt.Text)
	fmt.Printf("  -- %s (%s)\n", prompt.Source, prompt.ID)
	return nil
}

func snippet(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
