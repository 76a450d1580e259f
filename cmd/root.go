package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hkwire/hkctl/internal/pkg/logging"
	"github.com/hkwire/hkctl/internal/pkg/schema"
	"github.com/hkwire/hkctl/internal/pkg/transport"
)

var _rootCmdOpts struct {
	cfgFile   string
	verbosity int
	port      uint16
	home      string
	timeout   time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "hkctl",
	Short: "Command line porcelain for HomeKit",

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _rootCmdOpts.verbosity > 0 {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return logging.Configure(viper.GetViper())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.cfgFile, "config", "", "config file (default is $HOME/.hkctl.yaml)")
	rootCmd.PersistentFlags().CountVarP(&_rootCmdOpts.verbosity, "verbose", "v", "sets verbosity")
	rootCmd.PersistentFlags().Uint16VarP(&_rootCmdOpts.port, "port", "p", transport.DefaultPort, "local port to connect to")
	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.home, "home", "", "specify a home, defaults to the primary home")
	rootCmd.PersistentFlags().DurationVar(&_rootCmdOpts.timeout, "timeout", time.Second*30, "maximum duration of a call, eg. 1m or 10s")

	errPanic(viper.GetViper().BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")))
	errPanic(viper.GetViper().BindPFlag("home", rootCmd.PersistentFlags().Lookup("home")))
	errPanic(viper.GetViper().BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout")))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})
}

func initConfig() {
	if _rootCmdOpts.cfgFile != "" {
		viper.SetConfigFile(_rootCmdOpts.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".hkctl")
		}
	}

	viper.SetEnvPrefix("HKCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Logger(nil).Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// usageError marks a command line the user got wrong, as opposed to a
// call that failed.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// Execute runs the tool and reports the process exit code: 0 for
// success, 1 for a service error, 2 for a bad command line, 3 for a
// transport failure.
func Execute() int {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		return reportError(os.Stderr, cmd, err)
	}
	return 0
}

// reportError prints an error the way the exit-code contract demands:
// argument errors also get the command's usage text.
func reportError(w io.Writer, cmd *cobra.Command, err error) int {
	var ue *usageError
	var te *transport.TransportError
	var st *schema.Status
	switch {
	case errors.As(err, &ue):
		fmt.Fprintf(w, "hkctl: %v\n", err)
		fmt.Fprint(w, cmd.UsageString())
		return 2
	case errors.As(err, &te):
		fmt.Fprintf(w, "hkctl: %v\n", err)
		return 3
	case errors.As(err, &st):
		fmt.Fprintf(w, "Error returned by server: %s\n", st.Message)
		return 1
	default:
		fmt.Fprintf(w, "hkctl: %v\n", err)
		return 1
	}
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}

// newClient dials the locally running server.
func newClient() *transport.Client {
	return transport.NewClient(uint16(viper.GetUint("port")))
}

// callContext bounds a single RPC.
func callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
}

func homeFilter() string {
	return viper.GetString("home")
}
