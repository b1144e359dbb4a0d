package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/dhruvvakharia/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
