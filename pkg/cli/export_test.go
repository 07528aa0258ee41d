package cli

// Export internal constructors for testing
var NewPrinter = newPrinter
