package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/acquisition"
	"github.com/hsbo-copernicus/rasterproc/pkg/core"
	"github.com/hsbo-copernicus/rasterproc/pkg/dispatch"
	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
	"github.com/ryanuber/go-glob"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 5 * time.Minute

var reservedQueryParams = map[string]bool{
	"start": true,
	"end":   true,
	"bbox":  true,
	"type":  true,
}

func handleProcessingRequest(ctx context.Context, processingCore *core.Core, config ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte("only GET method is allowed"))
			return
		}

		if !isAllowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("request origin not allowed"))
			return
		}

		query := r.URL.Query()

		start, err := time.Parse(time.RFC3339, query.Get("start"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("start query parameter must be a RFC3339 timestamp"))
			return
		}

		end, err := time.Parse(time.RFC3339, query.Get("end"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("end query parameter must be a RFC3339 timestamp"))
			return
		}

		processingType := query.Get("type")
		if processingType == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("type query parameter is required"))
			return
		}

		params := make(map[string]string)
		for key, values := range query {
			if reservedQueryParams[key] || len(values) == 0 {
				continue
			}
			params[key] = values[0]
		}

		logrus.WithFields(logrus.Fields{
			"type": processingType,
			"bbox": query.Get("bbox"),
		}).Info("processing request")

		artifact, err := processingCore.Request(requestCtx, start, end, query.Get("bbox"), params, processingType)
		if err != nil {
			code := http.StatusInternalServerError
			switch {
			case errors.Is(err, geom.ErrMalformedExtent):
				code = http.StatusBadRequest
			case errors.Is(err, acquisition.ErrNoProducts):
				code = http.StatusNotFound
			case errors.Is(err, dispatch.ErrStageNotConfigured):
				code = http.StatusServiceUnavailable
			}

			logrus.WithError(err).Error("processing request failed")
			w.WriteHeader(code)
			w.Write([]byte(err.Error()))
			return
		}

		jsonResult, marshalErr := json.Marshal(artifact)
		if marshalErr != nil {
			logrus.WithError(marshalErr).Error("error ocurred when marshalling artifact handle")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("error ocurred when marshalling artifact handle"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(jsonResult)
	}
}

func handleListProcessors(processingCore *core.Core, config ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte("only GET method is allowed"))
			return
		}

		if !isAllowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("request origin not allowed"))
			return
		}

		names := make([]string, 0)
		for name := range processingCore.Processors() {
			names = append(names, name)
		}
		sort.Strings(names)

		jsonResult, err := json.Marshal(names)
		if err != nil {
			logrus.WithError(err).Error("error ocurred when marshalling processor names")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("error ocurred when marshalling processor names"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(jsonResult)
	}
}

func isAllowedOrigin(allowedOrigins []string, origin string) bool {
	if len(allowedOrigins) == 0 {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if glob.Glob(allowedOrigin, origin) {
			return true
		}
	}

	return false
}
