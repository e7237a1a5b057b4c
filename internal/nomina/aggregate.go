package nomina

// Pure aggregation over payroll line items. All money is int64
// centavos, so sums are exact and order-independent. These functions
// perform no I/O and never fail: malformed amounts must be rejected at
// the DTO boundary before reaching them.

// IngresoTotals holds the derived subtotals of one earnings group.
type IngresoTotals struct {
	SubtotalGravado   int64
	SubtotalNoGravado int64
	TotalIngresos     int64
}

// NominaTotals holds the run-level totals across all groups.
type NominaTotals struct {
	TotalIngresos int64
	TotalEgresos  int64
	NetoAPagar    int64
}

// ComputeIngresoTotals partitions the line items by taxability and sums
// each partition. The grand total always equals the sum of both
// subtotals. An empty input yields all zeros.
func ComputeIngresoTotals(lineas []NovedadLinea) IngresoTotals {
	var totals IngresoTotals
	for _, linea := range lineas {
		if linea.EsGravable {
			totals.SubtotalGravado += linea.MontoAplicado
		} else {
			totals.SubtotalNoGravado += linea.MontoAplicado
		}
	}
	totals.TotalIngresos = totals.SubtotalGravado + totals.SubtotalNoGravado
	return totals
}

// ComputeEgresoTotal sums deduction amounts. The taxability flag is not
// read for deductions.
func ComputeEgresoTotal(lineas []NovedadLinea) int64 {
	var total int64
	for _, linea := range lineas {
		total += linea.MontoAplicado
	}
	return total
}

// ComputeNominaTotals composes the pre-derived group totals into the
// run totals. NetoAPagar is not clamped: deductions exceeding earnings
// produce a negative net.
func ComputeNominaTotals(ingresos []Ingreso, egresos []Egreso) NominaTotals {
	var totals NominaTotals
	for _, grupo := range ingresos {
		totals.TotalIngresos += grupo.TotalIngresos
	}
	for _, grupo := range egresos {
		totals.TotalEgresos += grupo.TotalEgresos
	}
	totals.NetoAPagar = totals.TotalIngresos - totals.TotalEgresos
	return totals
}
