package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/vmhealth/internal/domain"
)

// RenderReport prints the status line and, when explain is set, the reasons
// and the three measured values.
func RenderReport(w io.Writer, report domain.HealthReport, explain bool) {
	fmt.Fprintf(w, "VM Health Status: %s\n", report.Status.Label())
	if !explain {
		return
	}

	if report.Healthy() {
		fmt.Fprintf(w, "All system resources are under %g%% utilization:\n", domain.Threshold)
	} else {
		fmt.Fprintf(w, "Reason(s): %s\n", strings.Join(report.Reasons, " "))
	}
	for _, m := range domain.Metrics {
		fmt.Fprintf(w, "- %s usage: %.2f%%\n", m.DisplayName(), report.Samples.Value(m))
	}
}
