package main

import (
	"fmt"
	"log"
	"os"

	"github.com/meridianswap/meridian/api"
)

func main() {
	snapshotPath := getEnv("AMM_SNAPSHOT", "snapshot.json")
	pools, err := api.LoadSnapshot(snapshotPath)
	if err != nil {
		log.Fatalf("Failed to load pool snapshot: %v", err)
	}

	serverConfig := api.DefaultConfig()
	serverConfig.Host = getEnv("API_HOST", serverConfig.Host)
	serverConfig.Port = getEnv("API_PORT", serverConfig.Port)

	server, err := api.NewServer(pools, serverConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Printf("Meridian quote gateway listening on %s:%s\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Health:  http://%s:%s/health\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Pools:   http://%s:%s/api/v1/pools\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Quote:   http://%s:%s/api/v1/quote\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Metrics: http://%s:%s/metrics\n", serverConfig.Host, serverConfig.Port)

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
