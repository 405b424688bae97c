package commands

import (
	"os"

	"pfp3/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("pfp3 error", "err", err.Error())
	os.Exit(1)
}
