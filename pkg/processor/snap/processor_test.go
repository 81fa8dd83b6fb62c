package snapprocessor_test

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	snapprocessor "github.com/hsbo-copernicus/rasterproc/pkg/processor/snap"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
	testutils "github.com/hsbo-copernicus/rasterproc/test/utils"
)

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func testInputProduct() product.Product {
	return product.Product{
		ID:          "raw-product",
		SourceName:  "S2A_MSIL1C_20210101T105031",
		MimeType:    "image/tiff",
		Size:        4,
		Data:        []byte{0x1, 0x2, 0x3, 0x4},
		WindowStart: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestSnapProcessor_TransformPostsPayloadToOperationEndpoint(t *testing.T) {
	transformed := []byte{0x9, 0x8, 0x7}

	server := testutils.NewTestHttpServer()
	server.HandleFunc("/correction", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST request, got %s", r.Method)
		}

		body, _ := ioutil.ReadAll(r.Body)
		if !bytes.Equal(body, testInputProduct().Data) {
			t.Errorf("expected raw payload to be forwarded, got %v", body)
		}

		w.Header().Set("Content-Type", "image/tiff")
		w.Write(transformed)
	})

	port := server.Start(t)
	corrections := snapprocessor.NewCorrections(snapprocessor.Config{
		ServiceURL: fmt.Sprintf("http://localhost:%d", port),
	})

	out, err := corrections.Transform(testCtx(t), testInputProduct())
	if err != nil {
		t.Fatalf("expected transform to succeed, got: %v", err)
	}

	if !bytes.Equal(out.Data, transformed) {
		t.Errorf("expected transformed payload, got %v", out.Data)
	}

	if out.Size != int64(len(transformed)) {
		t.Errorf("expected size %d, got %d", len(transformed), out.Size)
	}

	if out.SourceName != testInputProduct().SourceName {
		t.Error("expected source name to be carried over")
	}

	if out.ID == testInputProduct().ID || out.ID == "" {
		t.Error("expected transformed product to get a fresh ID")
	}
}

func TestSnapProcessor_TransformFailsOnNonOKStatus(t *testing.T) {
	server := testutils.NewTestHttpServer()
	server.HandleFunc("/ndvi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	port := server.Start(t)
	ndvi := snapprocessor.NewNDVI(snapprocessor.Config{
		ServiceURL: fmt.Sprintf("http://localhost:%d", port),
	})

	if _, err := ndvi.Transform(testCtx(t), testInputProduct()); err != snapprocessor.ErrResponseStatusNotOK {
		t.Errorf("expected ErrResponseStatusNotOK, got: %v", err)
	}
}

func TestSnapProcessor_TransformFailsOnEmptyResponse(t *testing.T) {
	server := testutils.NewTestHttpServer()
	server.HandleFunc("/ndvi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	port := server.Start(t)
	ndvi := snapprocessor.NewNDVI(snapprocessor.Config{
		ServiceURL: fmt.Sprintf("http://localhost:%d", port),
	})

	if _, err := ndvi.Transform(testCtx(t), testInputProduct()); err != snapprocessor.ErrEmptyResponse {
		t.Errorf("expected ErrEmptyResponse, got: %v", err)
	}
}

func TestSnapProcessor_ReservedNamesMatchRegistryConventions(t *testing.T) {
	config := snapprocessor.Config{ServiceURL: "http://snap"}

	if name := snapprocessor.NewCorrections(config).Name(); name != processor.TypeCorrection {
		t.Errorf("expected correction stage name %q, got %q", processor.TypeCorrection, name)
	}

	if name := snapprocessor.NewNDVI(config).Name(); name != processor.TypeNDVI {
		t.Errorf("expected ndvi stage name %q, got %q", processor.TypeNDVI, name)
	}
}
