package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	endpoint   string
	secureConn bool
	timeout    time.Duration
)

// errInvalidProof marks a proof that was checked and rejected, as opposed to
// a command that could not run
var errInvalidProof = errors.New("proof is invalid")

var rootCmd = &cobra.Command{
	Use:           "htcli",
	Short:         "Htcli builds, proves and verifies hash trees locally or against a hashtree server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "localhost:10000", "hashtree server endpoint")
	rootCmd.PersistentFlags().BoolVar(&secureConn, "secure", false, "connect with TLS")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Second, "timeout of remote calls")

	initLocal()
	initRemote()

	rootCmd.AddCommand(rootLocalCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(proofCmd)
	rootCmd.AddCommand(verifyCmd)

	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(proveLeafCmd)
	rootCmd.AddCommand(checkCmd)

	return nil
}

// Execute executes command. A rejected proof exits with status 2, any other
// failure with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errInvalidProof) {
			os.Exit(2)
		}

		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
