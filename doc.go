// Package smartlead is a thin client for the Smartlead email-outreach
// REST API. Every exported method maps onto exactly one upstream
// endpoint: it builds the request URL with the configured API key
// attached as a query parameter, performs a single blocking HTTP call
// and returns the decoded JSON body unchanged. The client holds no
// state between calls and never retries.
package smartlead
