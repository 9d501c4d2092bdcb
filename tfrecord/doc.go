// Package tfrecord splits a byte stream into length-framed record payloads.
//
// Each record is laid out as:
//
//	[Length: 8 bytes LE] [LengthCRC: 4 bytes] [Payload: Length bytes] [PayloadCRC: 4 bytes]
//
// The CRC fields hold masked CRC32C checksums. By default they are consumed
// and ignored; WithChecksumVerification(true) validates them.
//
// The number of records is not stored in the stream. Callers that know the
// count should use Records, which treats an early end of stream as
// ErrTruncatedStream:
//
//	r := tfrecord.NewReader(f)
//	for payload, err := range r.Records(n) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Compressed streams are supported through NewDecompressor.
package tfrecord
