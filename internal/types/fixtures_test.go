package types

// Shared fixtures for this package's test files: a small class
// hierarchy modeling java.util's generic collections, enough to
// exercise subtyping, supertype enumeration, projection and SAM
// resolution without a real symbol loader.
//
//	interface Comparable<T> {}
//	interface Iterable<T> {}
//	interface Collection<E> extends Iterable<E> {}
//	interface List<E> extends Collection<E> {}
//	class AbstractList<E> implements List<E> {}
//	class ArrayList<E> extends AbstractList<E> {}
//	interface Comparator<T> { int compare(T a, T b); }
//	interface Function<T, R> { R apply(T t); }
//	class String implements Comparable<String> {}
//	class Integer implements Comparable<Integer> {}

var ts = NewTypeSystem()

func newInterface(binaryName string, typeParamNames []string, superIfaces ...*ClassSymbol) *ClassSymbol {
	sym := ts.NewClassSymbol(binaryName, binaryName, "java.util")
	sym.IsInterfaceFlag = true
	sym.Modifiers = Public
	for _, n := range typeParamNames {
		sym.FormalTypeParams = append(sym.FormalTypeParams, NewTypeParam(n, objectSentinel))
	}
	for _, iface := range superIfaces {
		args := make([]Type, len(iface.FormalTypeParams))
		for i, p := range sym.FormalTypeParams {
			if i < len(args) {
				args[i] = p
			}
		}
		sym.SuperInterfaces = append(sym.SuperInterfaces, NewClassType(iface, args))
	}
	return sym
}

func newClass(binaryName string, typeParamNames []string, superclass *ClassSymbol, ifaces ...*ClassSymbol) *ClassSymbol {
	sym := ts.NewClassSymbol(binaryName, binaryName, "java.util")
	sym.Modifiers = Public
	for _, n := range typeParamNames {
		sym.FormalTypeParams = append(sym.FormalTypeParams, NewTypeParam(n, objectSentinel))
	}
	if superclass != nil {
		args := make([]Type, len(superclass.FormalTypeParams))
		for i := range args {
			if i < len(sym.FormalTypeParams) {
				args[i] = sym.FormalTypeParams[i]
			}
		}
		sym.Superclass = NewClassType(superclass, args)
	}
	for _, iface := range ifaces {
		args := make([]Type, len(iface.FormalTypeParams))
		for i := range args {
			if i < len(sym.FormalTypeParams) {
				args[i] = sym.FormalTypeParams[i]
			}
		}
		sym.SuperInterfaces = append(sym.SuperInterfaces, NewClassType(iface, args))
	}
	return sym
}

var (
	comparableSym = newInterface("java.lang.Comparable", []string{"T"})
	iterableSym   = newInterface("java.lang.Iterable", []string{"T"})
	collectionSym = newInterface("java.util.Collection", []string{"E"}, iterableSym)
	listSym       = newInterface("java.util.List", []string{"E"}, collectionSym)
	abstractListSym = newClass("java.util.AbstractList", []string{"E"}, nil, listSym)
	arrayListSym  = newClass("java.util.ArrayList", []string{"E"}, abstractListSym)

	stringSym = newClass("java.lang.String", nil, nil, comparableSym)
	integerSym = newClass("java.lang.Integer", nil, nil, comparableSym)
)

func init() {
	// String implements Comparable<String>, Integer implements
	// Comparable<Integer> -- fix up the SuperInterfaces built above, whose
	// type argument newClass left nil (its helper only knows how to wire
	// a generic's own formals positionally, not a fixed concrete argument).
	stringSym.SuperInterfaces = []*ClassType{NewClassType(comparableSym, []Type{NewClassType(stringSym, nil)})}
	integerSym.SuperInterfaces = []*ClassType{NewClassType(comparableSym, []Type{NewClassType(integerSym, nil)})}

	comparatorSym.Methods = []*MethodSymbol{
		{
			Name:           "compare",
			Modifiers:      Public | Abstract,
			EnclosingClass: comparatorSym,
			ParamTypes:     []Type{comparatorSym.FormalTypeParams[0], comparatorSym.FormalTypeParams[0]},
			ReturnType:     &Primitive{kind: Int},
		},
	}
	functionSym.Methods = []*MethodSymbol{
		{
			Name:           "apply",
			Modifiers:      Public | Abstract,
			EnclosingClass: functionSym,
			ParamTypes:     []Type{functionSym.FormalTypeParams[0]},
			ReturnType:     functionSym.FormalTypeParams[1],
		},
	}
}

var (
	comparatorSym = newInterface("java.util.Comparator", []string{"T"})
	functionSym   = newInterface("java.util.function.Function", []string{"T", "R"})
)

func listOf(arg Type) *ClassType    { return NewClassType(listSym, []Type{arg}) }
func collectionOf(arg Type) *ClassType { return NewClassType(collectionSym, []Type{arg}) }
func arrayListOf(arg Type) *ClassType { return NewClassType(arrayListSym, []Type{arg}) }
func stringType() *ClassType        { return NewClassType(stringSym, nil) }
func integerType() *ClassType       { return NewClassType(integerSym, nil) }
