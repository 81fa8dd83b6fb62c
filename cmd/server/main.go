package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/hsbo-copernicus/rasterproc/pkg/core"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("cannot load .env file")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logrus.Info("initializing processing core")
	processingCore := InitializeProcessingCore(ctx)

	if err := core.SetDefault(processingCore); err != nil {
		logrus.WithError(err).Fatal("cannot install shared core instance")
	}

	config := InitializeServerConfig()

	mux := http.NewServeMux()
	mux.HandleFunc("/process", handleProcessingRequest(ctx, processingCore, config))
	mux.HandleFunc("/processors", handleListProcessors(processingCore, config))

	logrus.WithField("port", config.Port).Info("listening")
	logrus.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", config.Port), mux))
}
