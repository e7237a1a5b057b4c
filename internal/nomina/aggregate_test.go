package nomina_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nominahr/payroll-management/internal/nomina"
)

func TestNomina(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Nomina Suite")
}

func linea(centavos int64, gravable bool) nomina.NovedadLinea {
	return nomina.NovedadLinea{MontoAplicado: centavos, EsGravable: gravable}
}

var _ = Describe("ComputeIngresoTotals", func() {
	It("returns all zeros for an empty group", func() {
		totals := nomina.ComputeIngresoTotals(nil)
		Expect(totals.SubtotalGravado).To(BeZero())
		Expect(totals.SubtotalNoGravado).To(BeZero())
		Expect(totals.TotalIngresos).To(BeZero())
	})

	It("partitions by the taxability flag", func() {
		totals := nomina.ComputeIngresoTotals([]nomina.NovedadLinea{
			linea(50000, true),
			linea(5000, false),
		})
		Expect(totals.SubtotalGravado).To(Equal(int64(50000)))
		Expect(totals.SubtotalNoGravado).To(Equal(int64(5000)))
		Expect(totals.TotalIngresos).To(Equal(int64(55000)))
	})

	It("keeps the subtotals summing exactly to the total", func() {
		lineas := []nomina.NovedadLinea{
			linea(1, true), linea(2, false), linea(3, true),
			linea(99999999, false), linea(7, true), linea(13, false),
		}
		totals := nomina.ComputeIngresoTotals(lineas)

		var sum int64
		for _, l := range lineas {
			sum += l.MontoAplicado
		}
		Expect(totals.SubtotalGravado + totals.SubtotalNoGravado).To(Equal(totals.TotalIngresos))
		Expect(totals.TotalIngresos).To(Equal(sum))
	})

	It("is order independent", func() {
		forward := []nomina.NovedadLinea{linea(100, true), linea(200, false), linea(300, true)}
		reversed := []nomina.NovedadLinea{linea(300, true), linea(200, false), linea(100, true)}

		Expect(nomina.ComputeIngresoTotals(forward)).To(Equal(nomina.ComputeIngresoTotals(reversed)))
	})
})

var _ = Describe("ComputeEgresoTotal", func() {
	It("returns zero for an empty group", func() {
		Expect(nomina.ComputeEgresoTotal(nil)).To(BeZero())
	})

	It("sums amounts ignoring the taxability flag", func() {
		total := nomina.ComputeEgresoTotal([]nomina.NovedadLinea{
			linea(1000, true),
			linea(2500, false),
		})
		Expect(total).To(Equal(int64(3500)))
	})
})

var _ = Describe("ComputeNominaTotals", func() {
	ingreso := func(total int64) nomina.Ingreso {
		return nomina.Ingreso{TotalIngresos: total}
	}
	egreso := func(total int64) nomina.Egreso {
		return nomina.Egreso{TotalEgresos: total}
	}

	It("returns all zeros with no groups", func() {
		totals := nomina.ComputeNominaTotals(nil, nil)
		Expect(totals.TotalIngresos).To(BeZero())
		Expect(totals.TotalEgresos).To(BeZero())
		Expect(totals.NetoAPagar).To(BeZero())
	})

	It("composes the pre-derived group totals", func() {
		totals := nomina.ComputeNominaTotals(
			[]nomina.Ingreso{ingreso(55000)},
			[]nomina.Egreso{egreso(12000)},
		)
		Expect(totals.TotalIngresos).To(Equal(int64(55000)))
		Expect(totals.TotalEgresos).To(Equal(int64(12000)))
		Expect(totals.NetoAPagar).To(Equal(int64(43000)))
	})

	It("allows a negative net when deductions exceed earnings", func() {
		totals := nomina.ComputeNominaTotals(
			[]nomina.Ingreso{ingreso(10000)},
			[]nomina.Egreso{egreso(15000)},
		)
		Expect(totals.NetoAPagar).To(Equal(int64(-5000)))
	})

	It("is additive over concatenated group sets", func() {
		inA := []nomina.Ingreso{ingreso(100), ingreso(200)}
		egA := []nomina.Egreso{egreso(50)}
		inB := []nomina.Ingreso{ingreso(400)}
		egB := []nomina.Egreso{egreso(25), egreso(75)}

		separate := nomina.ComputeNominaTotals(inA, egA)
		other := nomina.ComputeNominaTotals(inB, egB)
		combined := nomina.ComputeNominaTotals(
			append(append([]nomina.Ingreso{}, inA...), inB...),
			append(append([]nomina.Egreso{}, egA...), egB...),
		)

		Expect(combined.TotalIngresos).To(Equal(separate.TotalIngresos + other.TotalIngresos))
		Expect(combined.TotalEgresos).To(Equal(separate.TotalEgresos + other.TotalEgresos))
		Expect(combined.NetoAPagar).To(Equal(separate.NetoAPagar + other.NetoAPagar))
	})
})
