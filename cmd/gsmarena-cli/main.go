package main

import (
	"gsmarena-backend/cmd/gsmarena-cli/cmd"
	"gsmarena-backend/lib/configutil"
)

func main() {
	cmd.BaseUrl = configutil.Getenv("GSMARENA_BASE_URL", "")
	cmd.Execute()
}
