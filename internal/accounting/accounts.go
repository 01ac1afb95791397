package accounting

// Account is a symbolic ledger account used by the allocator.
type Account string

const (
	AccountPayable Account = "payable"
	AccountCash    Account = "cash"
	AccountExpense Account = "expense"
	AccountPrepaid Account = "prepaid"
)

// GL codes of the chart of accounts.
const (
	CodeCash    = "1002"
	CodePrepaid = "1122"
	CodePayable = "2202"
	CodeExpense = "6001"
)

var accountCodes = map[Account]string{
	AccountPayable: CodePayable,
	AccountCash:    CodeCash,
	AccountExpense: CodeExpense,
	AccountPrepaid: CodePrepaid,
}

// Code returns the GL code; unknown accounts return their own name.
func (a Account) Code() string {
	if code, ok := accountCodes[a]; ok {
		return code
	}
	return string(a)
}

// AccountResolver maps a GL code (or symbolic account) to a display name.
type AccountResolver interface {
	Name(code string) string
}

// MapResolver is a static AccountResolver. Unknown keys pass through.
type MapResolver map[string]string

func (m MapResolver) Name(code string) string {
	if name, ok := m[code]; ok {
		return name
	}
	return code
}

// DefaultResolver carries the display names of the standard chart.
var DefaultResolver = MapResolver{
	CodeExpense:            "Gastos",
	CodePayable:            "Cuentas por Pagar",
	CodeCash:               "Bancos",
	CodePrepaid:            "Pagos Anticipados",
	string(AccountExpense): "Gastos",
	string(AccountPayable): "Cuentas por Pagar",
	string(AccountCash):    "Bancos",
	string(AccountPrepaid): "Pagos Anticipados",
}

// Valid reports whether code belongs to the standard chart.
func Valid(code string) bool {
	for _, c := range accountCodes {
		if c == code {
			return true
		}
	}
	return false
}

// All lists the standard chart ordered by code.
func All() []string {
	return []string{CodeCash, CodePrepaid, CodePayable, CodeExpense}
}
