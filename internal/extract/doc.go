// Package extract recovers printable string candidates from raw byte
// buffers. It performs a single forward-only pass, attempting ASCII and
// UTF-16 (both byte orders) runs at each position, and never re-scans
// consumed bytes so total work stays linear in buffer size.
package extract
