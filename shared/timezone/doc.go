// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization from the composition root:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Current time in the app timezone and calendar dates:
//     now := timezone.Now()
//     day := timezone.Date(booking.CheckIn)    // UTC midnight of the stay date
//
//  3. Parsing stay dates sent by channels:
//     d, err := timezone.ParseDate("2024-01-01")
//
// Stay dates (check-in, check-out, availability days) are always date-only values at UTC
// midnight. Wall-clock timestamps (sync times, webhook receipt) use the app timezone.
package timezone
