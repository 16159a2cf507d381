// Command practice is a terminal client for timed conversation practice.
// It signs in against a running server, lets the student pick a topic, and
// drives a practice session: every line typed is one scored exchange with
// the tutor, and past sessions can be browsed without touching the live one.
//
// Usage:
//
//	practice -server http://localhost:8080 -email marie@example.com -password secret
//
// Commands inside the session:
//
//	start          begin (or resume) a session on the chosen topic
//	stop           end the session and show duration and accuracy
//	history        list past sessions on this topic
//	show <n>       display the ledger of history entry n
//	live           switch the display back to the running session
//	status         state, elapsed time and running accuracy
//	quit           exit
//
// Any other input is sent to the tutor as a practice message.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/internal/session"
	"github.com/parlezvous/parlezvous-backend/internal/session/httpgw"
)

const tutorReply = "Je comprends. Pouvez-vous me dire plus?"

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "backend base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "both -email and -password are required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	client := httpgw.NewClient(*serverURL)
	profile, err := client.Login(ctx, *email, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bonjour, %s!\n\n", profile.DisplayName)

	topic, err := pickTopic(ctx, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	machine := session.NewMachine(logger, client, session.NewRandomScorer(), &session.StaticResponder{Message: tutorReply})
	defer machine.Close()

	if err := machine.Load(ctx, topic.ID); err != nil {
		fmt.Fprintf(os.Stderr, "load topic: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Topic: %s (%s)\n", topic.Title, topic.Difficulty)
	if machine.State() == session.Active {
		fmt.Printf("Resumed an unfinished session at %s.\n", formatClock(machine.Elapsed()))
		printLedger(machine.Displayed())
	} else if n := len(machine.History()); n > 0 {
		fmt.Printf("%d past session(s) on this topic. Type 'history' to browse, 'start' to begin.\n", n)
	} else {
		fmt.Println("Type 'start' to begin.")
	}

	repl(ctx, machine)
}

func pickTopic(ctx context.Context, client *httpgw.Client) (*domain.Topic, error) {
	topics, err := client.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics available")
	}

	fmt.Println("Choose a topic:")
	for i, t := range topics {
		fmt.Printf("  %d. %s [%s, %s]\n", i+1, t.Title, t.Category, t.Difficulty)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil, fmt.Errorf("no topic chosen")
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(topics) {
			return topics[n-1], nil
		}
		fmt.Printf("Enter a number between 1 and %d.\n", len(topics))
	}
}

func repl(ctx context.Context, machine *session.Machine) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return
		case line == "start":
			cmdStart(ctx, machine)
		case line == "stop":
			cmdStop(ctx, machine)
		case line == "history":
			cmdHistory(machine)
		case strings.HasPrefix(line, "show "):
			cmdShow(machine, strings.TrimPrefix(line, "show "))
		case line == "live":
			cmdLive(machine)
		case line == "status":
			cmdStatus(machine)
		default:
			cmdSend(ctx, machine, line)
		}
	}
}

func cmdStart(ctx context.Context, machine *session.Machine) {
	if err := machine.Start(ctx); err != nil {
		fmt.Printf("start: %v\n", err)
		return
	}
	fmt.Printf("Session running at %s.\n", formatClock(machine.Elapsed()))
	printLedger(machine.Displayed())
}

func cmdSend(ctx context.Context, machine *session.Machine, message string) {
	if machine.State() != session.Active {
		fmt.Println("No session running. Type 'start' first.")
		return
	}
	if err := machine.Send(ctx, message); err != nil {
		fmt.Printf("send: %v\n", err)
		return
	}
	ledger := machine.Ledger()
	// Print the two turns just appended: the scored echo and the reply.
	if len(ledger) >= 2 {
		printExchange(ledger[len(ledger)-2])
		printExchange(ledger[len(ledger)-1])
	}
}

func cmdStop(ctx context.Context, machine *session.Machine) {
	if err := machine.Stop(ctx); err != nil {
		fmt.Printf("stop: %v\n", err)
		return
	}
	fmt.Printf("Session ended after %s.", formatClock(machine.Elapsed()))
	if acc := machine.Aggregate(); acc != nil {
		fmt.Printf(" Accuracy: %.1f%%.", *acc)
	}
	fmt.Println()
}

func cmdHistory(machine *session.Machine) {
	history := machine.History()
	if len(history) == 0 {
		fmt.Println("No past sessions on this topic.")
		return
	}
	for i, conv := range history {
		marker := " "
		if conv.ID == machine.Selected() {
			marker = "*"
		}
		line := fmt.Sprintf("%s %d. %s", marker, i+1, conv.StartedAt.Format("2006-01-02 15:04"))
		if conv.IsEnded() {
			if conv.Duration != nil {
				line += fmt.Sprintf("  %s", formatClock(*conv.Duration))
			}
			if conv.Accuracy != nil {
				line += fmt.Sprintf("  %.1f%%", *conv.Accuracy)
			}
		} else {
			line += "  (unfinished)"
		}
		fmt.Println(line)
	}
}

func cmdShow(machine *session.Machine, arg string) {
	history := machine.History()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(history) {
		fmt.Printf("Usage: show <1..%d>\n", len(history))
		return
	}
	if err := machine.SelectHistory(history[n-1].ID); err != nil {
		fmt.Printf("show: %v\n", err)
		return
	}
	printLedger(machine.Displayed())
}

func cmdLive(machine *session.Machine) {
	id, ok := machine.SessionID()
	if !ok {
		fmt.Println("No session this run.")
		return
	}
	if err := machine.SelectHistory(id); err != nil {
		fmt.Printf("live: %v\n", err)
		return
	}
	printLedger(machine.Displayed())
}

func cmdStatus(machine *session.Machine) {
	fmt.Printf("State: %s", machine.State())
	if machine.State() != session.NoSession {
		fmt.Printf("  Elapsed: %s", formatClock(machine.Elapsed()))
	}
	if acc := machine.Aggregate(); acc != nil {
		fmt.Printf("  Accuracy: %.1f%%", *acc)
	}
	fmt.Println()
}

func printLedger(exchanges []domain.Exchange) {
	for _, ex := range exchanges {
		printExchange(ex)
	}
}

func printExchange(ex domain.Exchange) {
	speaker := "tuteur"
	if ex.Role == domain.RoleStudent {
		speaker = "vous"
	}
	line := fmt.Sprintf("  [%s] %s", speaker, ex.Message)
	if ex.Accuracy != nil {
		line += fmt.Sprintf("  (%.1f%%)", *ex.Accuracy)
	}
	fmt.Println(line)
	if ex.Feedback != nil && *ex.Feedback != "" {
		fmt.Printf("          %s\n", *ex.Feedback)
	}
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
