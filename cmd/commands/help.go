package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Println(`pfp3 - per-user profile picture service

Usage:
  pfp3 run <config.yml>   start the server with the given config
  pfp3 version            print the version
  pfp3 help               print this help`) //nolint
}
