package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/Someshsw1109/soundwave-backend/cmd"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}
}

func main() {
	cmd.Execute()
}
