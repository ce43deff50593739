package rlp

import "github.com/prometheus/client_golang/prometheus"

// codecMetrics holds the ambient, observational-only prometheus
// instrumentation for the package's pack/unpack entry points. It is
// registered against the default registry on package init, mirroring the
// teacher's convention of a package-level metrics struct registered at
// import time rather than threaded through every call.
var codecMetrics = struct {
	unpacks      prometheus.Counter
	packs        prometheus.Counter
	unpackErrors *prometheus.CounterVec
	bytesIn      prometheus.Counter
	bytesOut     prometheus.Counter
}{
	unpacks: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rlp",
		Name:      "unpack_total",
		Help:      "Total number of Unpack calls.",
	}),
	packs: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rlp",
		Name:      "pack_total",
		Help:      "Total number of Pack/PackOne calls.",
	}),
	unpackErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rlp",
		Name:      "unpack_errors_total",
		Help:      "Total number of Unpack failures, labeled by error kind.",
	}, []string{"kind"}),
	bytesIn: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rlp",
		Name:      "unpack_bytes_total",
		Help:      "Total bytes passed to Unpack.",
	}),
	bytesOut: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rlp",
		Name:      "pack_bytes_total",
		Help:      "Total bytes produced by Pack/PackOne.",
	}),
}

func init() {
	prometheus.MustRegister(
		codecMetrics.unpacks,
		codecMetrics.packs,
		codecMetrics.unpackErrors,
		codecMetrics.bytesIn,
		codecMetrics.bytesOut,
	)
}

// observeUnpack records one Unpack call's outcome.
func observeUnpack(n int, err error) {
	codecMetrics.unpacks.Inc()
	codecMetrics.bytesIn.Add(float64(n))
	if err != nil {
		var kind ErrorKind
		if e, ok := err.(*Error); ok {
			kind = e.Kind
		} else {
			kind = Message
		}
		codecMetrics.unpackErrors.WithLabelValues(kind.String()).Inc()
	}
}

// observePack records one Pack/PackOne call's output size.
func observePack(n int) {
	codecMetrics.packs.Inc()
	codecMetrics.bytesOut.Add(float64(n))
}
