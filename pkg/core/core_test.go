package core_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hsbo-copernicus/rasterproc/pkg/core"
	"github.com/hsbo-copernicus/rasterproc/pkg/export"
	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
	"github.com/hsbo-copernicus/rasterproc/pkg/processor"
	"github.com/hsbo-copernicus/rasterproc/pkg/product"
)

type stubAcquirer struct{}

func (a *stubAcquirer) Acquire(ctx context.Context, start, end time.Time, area geom.Rect, params map[string]string) (product.Product, error) {
	return product.Product{ID: "raw", WindowStart: start, WindowEnd: end}, nil
}

type stubExporter struct{}

func (e *stubExporter) Export(ctx context.Context, p product.Product) (export.Artifact, error) {
	return export.Artifact{ID: p.ID, Location: "s3://raster-results/results/" + p.ID + ".tif"}, nil
}

type stubProcessor struct {
	name string
}

func (p *stubProcessor) Name() string {
	return p.name
}

func (p *stubProcessor) Transform(ctx context.Context, in product.Product) (product.Product, error) {
	out := in
	out.ID = in.ID + "+" + p.name
	return out, nil
}

func createTestingCore(processors ...processor.Processor) *core.Core {
	return core.New(&stubAcquirer{}, &stubExporter{}, processors...)
}

const testExtent = "10.0|20.0|30.0|40.0"

func testWindow() (time.Time, time.Time) {
	return time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 3, 7, 0, 0, 0, 0, time.UTC)
}

func TestCore_NewRegistersGivenProcessors(t *testing.T) {
	testingCore := createTestingCore(
		&stubProcessor{processor.TypeCorrection},
		&stubProcessor{processor.TypeNDVI},
	)

	available := testingCore.Processors()
	if len(available) != 2 {
		t.Fatalf("expected two registered processors, got %d", len(available))
	}

	if _, ok := available[processor.TypeCorrection]; !ok {
		t.Error("expected correction processor to be registered")
	}

	if _, ok := available[processor.TypeNDVI]; !ok {
		t.Error("expected ndvi processor to be registered")
	}
}

func TestCore_RequestRunsTheFullPipeline(t *testing.T) {
	testingCore := createTestingCore(
		&stubProcessor{processor.TypeCorrection},
		&stubProcessor{processor.TypeNDVI},
	)

	start, end := testWindow()
	artifact, err := testingCore.Request(context.Background(), start, end, testExtent, nil, processor.TypeNDVI)
	if err != nil {
		t.Fatalf("expected request to succeed, got: %v", err)
	}

	if artifact.ID != "raw+correction+ndvi" {
		t.Errorf("expected correction then ndvi to run over the raw product, got %q", artifact.ID)
	}
}

func TestCore_AddProcessorMakesTypeAvailableToRequests(t *testing.T) {
	testingCore := createTestingCore(&stubProcessor{processor.TypeCorrection})

	name := testingCore.AddProcessor(&stubProcessor{"evi"})
	if name != "evi" {
		t.Errorf("expected registered name to be returned, got %q", name)
	}

	start, end := testWindow()
	artifact, err := testingCore.Request(context.Background(), start, end, testExtent, nil, "evi")
	if err != nil {
		t.Fatalf("expected request to succeed, got: %v", err)
	}

	if artifact.ID != "raw+correction+evi" {
		t.Errorf("expected added processor to run after correction, got %q", artifact.ID)
	}
}

func TestCore_AddProcessorsReturnsFullNameSet(t *testing.T) {
	testingCore := createTestingCore(&stubProcessor{processor.TypeCorrection})

	names := testingCore.AddProcessors(
		&stubProcessor{processor.TypeNDVI},
		&stubProcessor{"evi"},
	)

	expected := []string{processor.TypeCorrection, "evi", processor.TypeNDVI}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}

	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", expected, names)
		}
	}
}

func TestCore_ConcurrentRegistrationsAndRequestsAreConsistent(t *testing.T) {
	testingCore := createTestingCore(&stubProcessor{processor.TypeCorrection})
	start, end := testWindow()

	const workers = 16
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(2)

		name := fmt.Sprintf("index-%d", i)
		go func() {
			defer wg.Done()
			testingCore.AddProcessor(&stubProcessor{name})
		}()

		go func() {
			defer wg.Done()

			// May run before or after the matching registration, either
			// degrades to correction-only or runs the typed stage. It must
			// never fail.
			if _, err := testingCore.Request(context.Background(), start, end, testExtent, nil, name); err != nil {
				t.Errorf("concurrent request failed: %v", err)
			}
		}()
	}

	wg.Wait()

	available := testingCore.Processors()
	for i := 0; i < workers; i++ {
		name := fmt.Sprintf("index-%d", i)
		if _, ok := available[name]; !ok {
			t.Errorf("registration of %q was lost", name)
		}
	}
}
