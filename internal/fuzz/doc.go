// Package fuzztests houses Go fuzz harnesses for the re-indentation passes.
// Its goal is to guard against panics and broken invariants on arbitrary
// inputs.
//
// Назначение: прогонять произвольные байты через sanitize и reindent и
// проверять сохранность длины строк и содержимого.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/sanitize, internal/reindent, internal/source,
// internal/diag, internal/testkit.
package fuzztests
