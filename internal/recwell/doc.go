// Package recwell fetches and decodes the UMD RecWell occupancy feed.
//
// # Overview
//
// This package owns the wire side of the app: one HTTP GET against the feed
// endpoint, and a staged decode of the returned JSON into facility records.
// It deliberately separates the two so each failure keeps its identity —
// the UI words its alerts differently for "could not reach the feed" versus
// "the feed did not contain the weight room".
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client, request headers, timeout, logging
//   - feed.go: staged JSON decode, facility lookup, error taxonomy
//
// # Feed Shape
//
// The endpoint returns a document of the form:
//
//	{
//	  "data": [
//	    {
//	      "title": "ERC Weight Room",
//	      "latest": {
//	        "count": 43,
//	        "time": "3:00 PM",
//	        "reason": "Open",
//	        "usage": "Green"
//	      }
//	    },
//	    ...
//	  ]
//	}
//
// Only the entry titled WeightRoomTitle is ever consumed. The title match is
// exact and case-sensitive; the scan takes the first match and does not
// continue past it.
//
// # Error Taxonomy
//
// Decode failures are sentinel errors checked with errors.Is:
//
//   - ErrParse: body is not valid JSON, or the top level is not an object
//   - ErrShape: no "data" key, or its value is not an array of objects
//   - ErrNotFound: no entry matched the title, or the matched entry has no
//     usable "latest" object
//
// Anything else coming out of a refresh (dial errors, timeouts, non-2xx
// statuses, a malformed endpoint URL) is a connectivity failure; the source
// feed gives no reason to distinguish those further.
//
// Field-level problems inside an entry never produce an error. A count that
// is not a number decodes to 0, a time or reason that is not a string
// decodes to "". The feed has historically contained junk rows and the app
// must shrug them off rather than refuse the whole document.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: umdgym/0.1
//   - Carry a generated X-Request-ID for log correlation
//   - Have a 5-second timeout (http.Client)
//   - Return wrapped errors with context about what failed
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "feed returned status 503"
//   - "feed has unexpected shape: missing data key"
//
// # Thread Safety
//
// Client is safe for concurrent use; the app issues overlapping fetches
// when the user mashes refresh and relies on that.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (every refresh hits the feed)
//   - No retries (a failed refresh surfaces immediately as an alert)
//   - No cancellation of in-flight fetches (latest completion wins)
//   - No mutations (the app is read-only)
//
// This keeps the client simple and predictable while meeting all current needs.
package recwell
