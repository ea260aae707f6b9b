package cmd

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpu-scheduler-simulator/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduler HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app := fiber.New()
		api.Register(app, api.NewSchedulerHandlerImpl(cfg))

		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Println("listening on", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCLI.AddCommand(serveCmd)
}
