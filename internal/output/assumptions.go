package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs
var DefaultAssumptions = []string{
	"Retirement horizon: 30 years",
	"Basic method: 75% of current expenses, savings spread evenly with no growth",
	"Intermediate method: 80% of current expenses, 4% annual withdrawal plus guaranteed income",
	"Advanced method: 1,000 trials, returns uniform in 4%-10%, inflation uniform in 2%-4%",
	"Guaranteed income: Social Security, pension, rental and other monthly income",
	"All amounts in today's dollars; taxes are not modeled",
}
