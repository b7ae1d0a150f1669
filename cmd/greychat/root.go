package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greyhound-backend/internal/client"
	"greyhound-backend/internal/config"
	"greyhound-backend/internal/content"
	"greyhound-backend/internal/logging"
	"greyhound-backend/internal/render"
	"greyhound-backend/internal/ui"
)

const (
	ENV_PREFIX   = "GREYCHAT"
	ENV_URL      = "URL"
	ENV_STYLE    = "STYLE"
	ENV_LOG_FILE = "LOG_FILE"

	DEFAULT_URL = "http://localhost:8080"
	WRAP_WIDTH  = 80

	suggestionsTimeout = 5 * time.Second
)

// TUIRunner runs a bubbletea program to completion.
type TUIRunner interface {
	Run(model tea.Model) (tea.Model, error)
}

type teaRunner struct{}

func (teaRunner) Run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
}

func envName(key string) string {
	return ENV_PREFIX + "_" + key
}

func RootCommand(tui TUIRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "greychat",
		Short: "Talk to the Greyhound Sanctuary assistant from the command line.",
		Example: `
greychat chat                           # Open the chat panel
greychat chat --transcript chat.html    # Save the conversation on exit
greychat ask "Are greyhounds good with cats?"
greychat faq -i                         # Browse the FAQ
	`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	rootCmd.PersistentFlags().String("url", DEFAULT_URL,
		fmt.Sprintf("Sanctuary backend base URL. (env: %s)", envName(ENV_URL)))
	rootCmd.PersistentFlags().String("style", render.DefaultStyle,
		fmt.Sprintf("Markdown style: dark, light, notty, ... (env: %s)", envName(ENV_STYLE)))
	rootCmd.PersistentFlags().String("log-file", "",
		fmt.Sprintf("Write logs to this file instead of discarding them. (env: %s)", envName(ENV_LOG_FILE)))

	viper.BindPFlag(ENV_URL, rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag(ENV_STYLE, rootCmd.PersistentFlags().Lookup("style"))
	viper.BindPFlag(ENV_LOG_FILE, rootCmd.PersistentFlags().Lookup("log-file"))

	viper.SetEnvPrefix(ENV_PREFIX)
	viper.AutomaticEnv()

	rootCmd.AddCommand(chatCommand(tui), askCommand(), faqCommand(tui))
	return rootCmd
}

// setupLogging keeps the terminal clean: logs go to a file or nowhere.
func setupLogging(cmd *cobra.Command, args []string) error {
	path := viper.GetString(ENV_LOG_FILE)
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}
	_, err := logging.Init(&config.Config{LogLevel: "debug", LogFormat: "text", LogFile: path})
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	return nil
}

func newRenderer() (*render.Terminal, error) {
	return render.NewTerminal(viper.GetString(ENV_STYLE), WRAP_WIDTH)
}

func newRelayClient() *client.RelayClient {
	return client.NewRelayClient(viper.GetString(ENV_URL), nil)
}

func chatCommand(tui TUIRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat panel.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer()
			if err != nil {
				return err
			}

			relay := newRelayClient()
			widget := client.NewWidget(relay)
			widget.Toggle()
			loadSuggestions(cmd.Context(), relay, widget)

			model := ui.NewChatModel(ui.ChatOptions{
				Title:    content.AssistantName,
				Widget:   widget,
				Renderer: renderer,
				Context:  cmd.Context(),
			})
			if _, err := tui.Run(model); err != nil {
				return fmt.Errorf("error running chat: %v", err)
			}
			widget.Close()

			path, _ := cmd.Flags().GetString("transcript")
			if path == "" {
				return nil
			}
			return writeTranscript(path, widget)
		},
	}
	cmd.Flags().String("transcript", "", "Write the conversation to this HTML file on exit.")
	return cmd
}

// loadSuggestions swaps in the server's sample questions; the built-in ones
// stay when the server cannot be reached.
func loadSuggestions(ctx context.Context, relay *client.RelayClient, widget *client.Widget) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, suggestionsTimeout)
	defer cancel()

	questions, err := relay.Suggestions(ctx)
	if err != nil {
		slog.Warn("using built-in suggestions", "error", err)
		return
	}
	if len(questions) == 0 {
		slog.Warn("using built-in suggestions, server returned none")
		return
	}
	widget.SetSuggestions(questions)
}

func writeTranscript(path string, widget *client.Widget) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create transcript: %v", err)
	}
	if err := render.WriteTranscript(f, widget.Messages(), time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write transcript: %v", err)
	}
	return f.Close()
}

var errNoAnswer = errors.New("the assistant could not answer")

func askCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question and print the answer.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) == "" {
				return fmt.Errorf("question must not be empty")
			}

			renderer, err := newRenderer()
			if err != nil {
				return err
			}

			widget := client.NewWidget(newRelayClient())
			widget.SetInput(question)
			widget.Send(cmd.Context())

			msgs := widget.Messages()
			last := msgs[len(msgs)-1]
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Message(last))
			if last.IsError {
				return errNoAnswer
			}
			return nil
		},
	}
}

func faqCommand(tui TUIRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Show the frequently asked questions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer()
			if err != nil {
				return err
			}

			items, err := newRelayClient().FAQ(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load FAQ: %v", err)
			}

			interactive, _ := cmd.Flags().GetBool("interactive")
			if interactive {
				if _, err := tui.Run(ui.NewFAQModel(items, renderer)); err != nil {
					return fmt.Errorf("error running FAQ: %v", err)
				}
				return nil
			}

			var md strings.Builder
			md.WriteString("# Frequently Asked Questions\n\n")
			for _, item := range items {
				fmt.Fprintf(&md, "## %s\n\n%s\n\n", item.Question, item.Answer)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Markdown(md.String()))
			return nil
		},
	}
	cmd.Flags().BoolP("interactive", "i", false, "Browse the FAQ as an accordion.")
	return cmd
}
