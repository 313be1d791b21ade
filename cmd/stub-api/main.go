package main

import (
	"log"

	"github.com/fragranceshop/fragrance-admin/internal/config"
)

func main() {
	cfg := config.Load()
	r := newRouter(newStore())
	log.Printf("stub-api listening on %s", cfg.StubAPIAddr)
	log.Fatal(r.Run(cfg.StubAPIAddr))
}
