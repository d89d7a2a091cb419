// auth.go implements the "alog auth" command for the authorization-code flow.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/browser"
	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/procore"
)

var authCmd = &cobra.Command{
	Use:   "auth [CODE]",
	Short: "Authorize and store an access token",
	Long: `Open the provider's authorization page in the browser, then trade
the code shown there for an access token. The code can be passed as an
argument or pasted at the prompt; the token is stored for later runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuth,
}

var authNoBrowser bool

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	url := procore.AuthorizeURL(cfg.OAuth.AuthorizeURL, cfg.OAuth.ClientID, cfg.OAuth.RedirectURI)

	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		if authNoBrowser {
			fmt.Printf("Open this URL to authorize:\n\n  %s\n\n", url)
		} else {
			fmt.Println("Opening the authorization page in your browser...")
			if err := browser.Open(url); err != nil {
				fmt.Printf("Could not open the browser; visit:\n\n  %s\n\n", url)
			} else {
				_ = logger.Append(log.LogEvent{Event: log.EventAuthOpened})
			}
		}

		fmt.Print("Paste the authorization code: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("no code entered")
		}
		code = strings.TrimSpace(scanner.Text())
	}

	token, err := client.ExchangeCode(context.Background(), code)
	if err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventRequestFailed, Operation: "exchange", Error: err.Error()})
		return err
	}
	if err := store.SaveToken(token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	_ = logger.Append(log.LogEvent{Event: log.EventTokenExchanged})

	fmt.Println("Access token stored.")
	return nil
}

func init() {
	authCmd.Flags().BoolVar(&authNoBrowser, "no-browser", false, "Print the authorization URL instead of opening a browser")
}
