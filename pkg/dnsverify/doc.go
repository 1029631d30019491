// Package dnsverify checks that the domain of a recipient address can receive
// mail before a campaign is sent to it.
//
// A domain accepts mail when it publishes an MX record, or, without one, when
// it resolves to an address. A single null MX (".") means the domain
// explicitly accepts no mail.
//
//	err := dnsverify.CheckDomain(ctx, nil, "example.com")
//	if errors.Is(err, dnsverify.ErrNoMailServer) {
//		// sending there will bounce
//	}
//
// CheckAddresses checks the distinct domains of a list of addresses in
// parallel and returns only the failing ones:
//
//	failed := dnsverify.CheckAddresses(ctx, nil, addresses, dnsverify.DefaultConcurrency)
//	for domain, err := range failed {
//		fmt.Println(domain, err)
//	}
//
// A nil Resolver uses net.DefaultResolver. Lookup errors other than "not found"
// are reported as ErrDNSLookupFailed so a flaky resolver is not mistaken for a
// dead domain.
package dnsverify
