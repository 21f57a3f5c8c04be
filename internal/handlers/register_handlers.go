package handlers

// registerCommands builds the main menu in display order. Key "0" (save and
// exit) is handled by the loop itself.
func registerCommands(c *Console) []command {
	return []command{
		{key: "1", title: "Register New Customer", mutates: true, run: c.registerCustomer},
		{key: "2", title: "Open Account for Customer", mutates: true, run: c.openAccount},
		{key: "3", title: "Deposit Money", mutates: true, run: c.deposit},
		{key: "4", title: "Withdraw Money", mutates: true, run: c.withdraw},
		{key: "5", title: "Transfer Money", mutates: true, run: c.transfer},
		{key: "6", title: "View Customer Details", run: c.customerDetails},
		{key: "7", title: "View Transaction History", run: c.transactionHistory},
		{key: "8", title: "List All Customers", run: c.listCustomers},
		{key: "9", title: "Search Customers", run: c.searchCustomers},
		{key: "10", title: "Bank Statistics", run: c.bankStatistics},
		{key: "11", title: "Save Data", run: c.save},
	}
}
