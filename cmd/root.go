package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quickbite/quickbite/internal/models"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quickbite",
	Short: "In-process food ordering backend with mock latency",
	Long:  `quickbite serves a food-ordering API (restaurants, menus, cart, checkout, order tracking) backed by an in-memory or Postgres entity store, with optional Redis caching and Kafka event output.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		runServe(cfg)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("http-addr", ":8080", "Address for the HTTP API")
	rootCmd.PersistentFlags().String("storage", "memory", "Entity store backend: memory or postgres")
	rootCmd.PersistentFlags().String("postgres-dsn", "", "Postgres connection string")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for the restaurant cache")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Enable Kafka event output")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().Duration("mock-latency", 0, "Artificial delay before every service call")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func mustLoadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
