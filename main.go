package main

import (
	"github.com/SundayYogurt/auth_service/config"
	"github.com/SundayYogurt/auth_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
