package cmd

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/qLib/core/config"
	"github.com/msto63/qLib/core/log"
)

var (
	stressGoroutines int
	stressMessages   int
)

var logstressCmd = &cobra.Command{
	Use:   "logstress",
	Short: "Exercise the log sink with concurrent writers",
	Long: `Configures logging from the configuration store, then emits
goroutines x messages records concurrently. Useful for verifying line
integrity and file rotation under load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			printError("cannot load configuration", err)
			return err
		}
		if err := config.ConfigureLogging(store); err != nil {
			// Degraded console-only logging is acceptable for a stress run.
			printError("logging partially configured", err)
		}
		defer log.Close()

		runID := uuid.NewString()
		logger := log.New("logstress")
		logger.Info("stress run {} starting: {} goroutines x {} messages",
			runID, stressGoroutines, stressMessages)

		timer := logger.StartTimer("logstress_run").WithLevel(log.LevelInfo)
		defer timer.Stop()

		var wg sync.WaitGroup
		for g := 0; g < stressGoroutines; g++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				w := log.New(fmt.Sprintf("worker-%d", worker))
				for m := 0; m < stressMessages; m++ {
					w.Info("run {} worker {} message {}", runID, worker, m)
				}
			}(g)
		}
		wg.Wait()

		logger.Info("stress run {} finished", runID)
		if verbose {
			fmt.Printf("emitted %d records (run %s)\n",
				stressGoroutines*stressMessages, runID)
		}
		return nil
	},
}

func init() {
	logstressCmd.Flags().IntVar(&stressGoroutines, "goroutines", 8, "number of concurrent writers")
	logstressCmd.Flags().IntVar(&stressMessages, "messages", 1000, "messages per writer")
	rootCmd.AddCommand(logstressCmd)
}
