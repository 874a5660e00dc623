package resolver

// stockAlias maps a lowercase company name to its NSE ticker symbol
type stockAlias struct {
	Name   string
	Symbol string
}

// stockAliases is the built-in lookup table for major Indian companies.
// Order matters: substring matching scans the table top to bottom and
// takes the first hit, so more specific names must come before their
// shorter variants only when the shorter variant maps elsewhere.
var stockAliases = []stockAlias{
	{"reliance", "RELIANCE.NS"}, {"reliance industries", "RELIANCE.NS"}, {"ril", "RELIANCE.NS"},
	{"tcs", "TCS.NS"}, {"tata consultancy", "TCS.NS"}, {"tata consultancy services", "TCS.NS"},
	{"hdfc bank", "HDFCBANK.NS"}, {"hdfc", "HDFCBANK.NS"},
	{"infosys", "INFY.NS"},
	{"icici bank", "ICICIBANK.NS"}, {"icici", "ICICIBANK.NS"},
	{"hul", "HINDUNILVR.NS"}, {"hindustan unilever", "HINDUNILVR.NS"},
	{"sbi", "SBIN.NS"}, {"state bank of india", "SBIN.NS"},
	{"bharti airtel", "BHARTIARTL.NS"}, {"airtel", "BHARTIARTL.NS"},
	{"bajaj finance", "BAJFINANCE.NS"}, {"bajaj", "BAJFINANCE.NS"},
	{"lt", "LT.NS"}, {"larsen toubro", "LT.NS"}, {"larsen", "LT.NS"},
	{"itc", "ITC.NS"},
	{"axis bank", "AXISBANK.NS"}, {"axis", "AXISBANK.NS"},
	{"asian paints", "ASIANPAINT.NS"},
	{"maruti", "MARUTI.NS"}, {"maruti suzuki", "MARUTI.NS"},
	{"wipro", "WIPRO.NS"},
	{"ultra tech", "ULTRACEMCO.NS"}, {"ultratech cement", "ULTRACEMCO.NS"},
	{"nestle", "NESTLEIND.NS"}, {"nestle india", "NESTLEIND.NS"},
	{"titan", "TITAN.NS"},
	{"sun pharma", "SUNPHARMA.NS"}, {"sun pharmaceutical", "SUNPHARMA.NS"},
	{"hindalco", "HINDALCO.NS"},
	{"jsw steel", "JSWSTEEL.NS"},
	{"tata steel", "TATASTEEL.NS"},
	{"adani ports", "ADANIPORTS.NS"}, {"adani", "ADANIPORTS.NS"},
	{"power grid", "POWERGRID.NS"},
	{"ntpc", "NTPC.NS"},
	{"coal india", "COALINDIA.NS"},
	{"ongc", "ONGC.NS"}, {"oil and natural gas", "ONGC.NS"},
	{"indian oil", "IOC.NS"}, {"ioc", "IOC.NS"},
	{"gail", "GAIL.NS"},
	{"vedanta", "VEDL.NS"},
	{"jindal steel", "JINDALSTEL.NS"},
	{"tata motors", "TATAMOTORS.NS"},
	{"mahindra", "M&M.NS"}, {"mahindra and mahindra", "M&M.NS"},
	{"eicher motors", "EICHERMOT.NS"}, {"royal enfield", "EICHERMOT.NS"},
	{"hero motocorp", "HEROMOTOCO.NS"}, {"hero", "HEROMOTOCO.NS"},
	{"bajaj auto", "BAJAJ-AUTO.NS"},
	{"dr reddy", "DRREDDY.NS"}, {"dr reddys", "DRREDDY.NS"},
	{"cipla", "CIPLA.NS"},
	{"lupin", "LUPIN.NS"},
	{"divis labs", "DIVISLAB.NS"},
	{"zomato", "ZOMATO.NS"},
	{"paytm", "PAYTM.NS"},
	{"nykaa", "NYKAA.NS"},
	{"policybazaar", "PBFINTECH.NS"},
	{"delhivery", "DELHIVERY.NS"},
}
