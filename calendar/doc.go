// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar implements the production calendar core: period
expression resolution, base calendar synthesis, override merging,
presentation, and statistics.

# Periods

ResolvePeriod turns a path expression into an inclusive date range with
a human label:

	2025                    → year ("Год")
	Q12025                  → quarter ("Квартал")
	01.2025                 → month ("Месяц")
	15.01.2025              → day ("Сутки")
	01.01.2025-15.02.2025   → range ("Произвольный период")

# Assembling a Calendar

The read path composes four steps:

	p, _ := calendar.ResolvePeriod("Q12025")
	base := calendar.BaseDays(p.Start, p.End, weekType)
	merged := calendar.Merge(base, stored)
	days := calendar.Present(merged, compact, weekType)

BaseDays derives workdays and weekends purely from the week type; every
deviation (holidays, transferred days) arrives via Merge, where a stored
row wholly replaces the synthesized day for its date.
*/
package calendar
