package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistModel is the Gemini model backing the assistant.
const assistModel = "gemini-2.5-flash"

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `cft assist [<initial prompt>]

  Starts an interactive session with an AI assistant that has the current
  portfolio valuation in front of it. Requires Gemini credentials in the
  environment (GEMINI_API_KEY). Type 'bye' to exit.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	store := appStore()
	settings := store.LoadSettings()
	ledger := store.LoadLedger()

	valuation, err := cryptofolio.NewValuationReport(ctx, appClient(), cryptofolio.NewQuoteThrottle(), ledger, settings.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	system := "You are a pragmatic assistant for a personal cryptocurrency portfolio tracker. " +
		"Answer questions about the portfolio below. Be concise; this is not financial advice.\n\n" +
		renderer.ValuationMarkdown(valuation)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	if err := runAssist(ctx, chat, os.Stdin, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runAssist is the REPL loop of the assistant session.
func runAssist(ctx context.Context, chat *genai.Chat, in io.Reader, prompts ...string) error {
	fmt.Println("Welcome to cft assist. Type 'bye' to exit.")
	r := bufio.NewReader(in)

	for {
		fmt.Print("assist> ")
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 && prompts[0] != "" {
			input, prompts = prompts[0], prompts[1:]
			fmt.Println(input)
		} else {
			prompts = nil
			var err error
			input, err = r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		resp, err := chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("no response from the assistant")
		}
		printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	}
}
