package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it should be created on its own registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, Default().Registry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metrics are registered under the custom names", func() {
				So(manager.Registry(), ShouldEqual, registry)
				manager.linesParsed.Add(2)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				var names []string
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_lines_parsed_total")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		m := Default()

		Convey("When recording conversion metrics", func() {
			before := testutil.ToFloat64(m.linesParsed)
			repairedBefore := testutil.ToFloat64(m.namesRepaired)
			RecordLinesParsed(3)
			RecordNamesRepaired(1)

			Convey("Then the counters advance", func() {
				So(testutil.ToFloat64(m.linesParsed)-before, ShouldEqual, 3.0)
				So(testutil.ToFloat64(m.namesRepaired)-repairedBefore, ShouldEqual, 1.0)
			})
		})

		Convey("When recording snapshot writes", func() {
			written := testutil.ToFloat64(m.snapshotWrites.WithLabelValues("written"))
			skipped := testutil.ToFloat64(m.snapshotWrites.WithLabelValues("skipped"))
			RecordSnapshotWrite(true)
			RecordSnapshotWrite(false)
			RecordSnapshotWrite(false)

			Convey("Then results are labeled", func() {
				So(testutil.ToFloat64(m.snapshotWrites.WithLabelValues("written"))-written, ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.snapshotWrites.WithLabelValues("skipped"))-skipped, ShouldEqual, 2.0)
			})
		})

		Convey("When recording loads and merges", func() {
			loaded := testutil.ToFloat64(m.snapshotsLoaded)
			records := testutil.ToFloat64(m.recordsLoaded)
			merges := testutil.ToFloat64(m.historyMerges)
			matched := testutil.ToFloat64(m.historyMatched)
			unmatched := testutil.ToFloat64(m.historyUnmatched)

			RecordSnapshotLoaded(10)
			RecordLoadDuration(4)
			RecordHistoryMerge(7, 3)

			Convey("Then every counter reflects the call", func() {
				So(testutil.ToFloat64(m.snapshotsLoaded)-loaded, ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.recordsLoaded)-records, ShouldEqual, 10.0)
				So(testutil.ToFloat64(m.historyMerges)-merges, ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.historyMatched)-matched, ShouldEqual, 7.0)
				So(testutil.ToFloat64(m.historyUnmatched)-unmatched, ShouldEqual, 3.0)
			})
		})

		Convey("When recording errors", func() {
			c := m.errorsByComponent.WithLabelValues("repository", "deserialize")
			before := testutil.ToFloat64(c)
			RecordErrorByComponent("repository", "deserialize")

			Convey("Then the labeled counter advances", func() {
				So(testutil.ToFloat64(c)-before, ShouldEqual, 1.0)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a manager with some observations", t, func() {
		m := NewManager()
		m.historyMerges.Inc()
		path := filepath.Join(t.TempDir(), "fiprank.prom")

		Convey("When writing the textfile", func() {
			err := m.WriteTextfile(path)

			Convey("Then the file holds the exposition format", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "fiprank_pipeline_history_merges_total 1")
			})
		})

		Convey("When the directory does not exist", func() {
			err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))

			Convey("Then an export error is returned", func() {
				So(err, ShouldNotBeNil)
				So(strings.Contains(err.Error(), ErrExportFailed.Error()), ShouldBeTrue)
			})
		})
	})
}
