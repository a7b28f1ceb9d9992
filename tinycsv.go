// # TinyCSV: A Minimal Streaming CSV Codec for Go
//
// TinyCSV reads and writes the common comma-separated dialect without pulling in a parsing library.
// The reader pulls one character at a time from any io.Reader, including pipes and sockets that
// cannot seek, and the writer always emits canonical output.
//
// # Dialect
//
// - Field delimiter is ',' and the quote character is '"'. Neither is configurable.
// - Inside a quoted field a doubled quote ("") stands for one literal quote.
// - Rows end with "\n", "\r\n" or a bare "\r" on read; the writer always ends rows with "\n".
// - A quote in the middle of an unquoted field is kept as a literal character.
// - Input that ends inside a quoted field fails with a ParseError wrapping ErrUnterminatedQuote.
//
// # Getting Started
//
// Use NewReader and NewWriter for streams, or OpenFile, CreateFile, ReadFile and WriteFile when
// the codec should own the file. The lookup subpackage searches parsed rows by free-text query.
package tinycsv
