package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nibzard/priotasks/internal/config"
	"github.com/nibzard/priotasks/internal/session"
	"github.com/nibzard/priotasks/internal/task"
	"github.com/nibzard/priotasks/internal/ui"
)

// runBatch executes one command per line of r against sess. Blank lines and
// lines starting with # are skipped. The first bad line stops the run.
func runBatch(ctx context.Context, cfg *config.Config, sess *session.Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execBatchLine(cfg, sess, line, w); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

func execBatchLine(cfg *config.Config, sess *session.Session, line string, w io.Writer) error {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: add <priority> <deadline> <title...>")
		}
		priority, err := task.ParsePriority(args[0])
		if err != nil {
			return err
		}
		// Rejected forms are silent, matching the interactive form.
		sess.Submit(session.Form{
			Title:    strings.Join(args[2:], " "),
			Priority: priority,
			Deadline: args[1],
		})
		return nil
	case "complete", "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <id>", name)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		if name == "complete" {
			sess.Complete(id)
		} else {
			sess.Delete(id)
		}
		return nil
	case "sort":
		if len(args) != 1 {
			return fmt.Errorf("usage: sort date|priority")
		}
		by, err := task.ParseSortBy(args[0])
		if err != nil {
			return err
		}
		sess.ToggleSort(by)
		return nil
	case "toggle":
		if len(args) != 1 {
			return fmt.Errorf("usage: toggle form|active|completed")
		}
		section, err := session.ParseSection(args[0])
		if err != nil {
			return err
		}
		sess.ToggleSection(section)
		return nil
	case "list":
		if len(args) != 0 {
			return fmt.Errorf("usage: list")
		}
		return ui.WritePlain(w, sess, cfg.DeadlineLayout)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
