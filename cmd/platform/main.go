package main

import (
	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/pipsmade/platform/internal/app/platform"
)

func main() {
	platform.Run()
}
