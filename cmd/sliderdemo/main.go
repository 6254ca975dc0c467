package main

import (
	"flag"

	demoapp "github.com/edward-ap/rangeslider/internal/demoapp"
)

func main() {
	trace := flag.Bool("traceLog", false, "enable slider trace logging and verbose libVLC logging to vlc.log")
	flag.Parse()
	demoapp.SetTraceLogEnabled(*trace)

	app := demoapp.NewApp()
	app.Run()
}
