package catalog

import "github.com/san-kum/sortviz/internal/sorting"

func bubbleEntry() *Entry {
	return &Entry{
		Name:        "bubble",
		Description: "adaptive bubble sort: swap adjacent pairs until a pass is clean",
		Pseudocode: []string{
			"Repeat until no swaps:",
			"  Start a new pass",
			"  For each pair of adjacent numbers:",
			"    If left > right:",
			"      Swap them",
			"      Mark that a swap happened",
			"  Move to next pass",
		},
		markerLines: map[sorting.Label]int{
			sorting.LabelPassStart:    1,
			sorting.LabelCompare:      2,
			sorting.LabelSwapDecision: 3,
			sorting.LabelSwapDone:     5,
			sorting.LabelPassEnd:      6,
		},
		compareLine: 2,
		swapLine:    4,
		Code: map[View]string{
			ViewPython: `def bubble_sort(arr):
    n = len(arr)
    for i in range(n):
        for j in range(0, n-i-1):
            if arr[j] > arr[j+1]:
                arr[j], arr[j+1] = arr[j+1], arr[j]`,
			ViewC: `void bubbleSort(int arr[], int n) {
    for (int i = 0; i < n-1; i++) {
        for (int j = 0; j < n-i-1; j++) {
            if (arr[j] > arr[j+1]) {
                int temp = arr[j];
                arr[j] = arr[j+1];
                arr[j+1] = temp;
            }
        }
    }
}`,
			ViewCPP: `void bubbleSort(vector<int>& arr) {
    int n = arr.size();
    for (int i = 0; i < n-1; i++) {
        for (int j = 0; j < n-i-1; j++) {
            if (arr[j] > arr[j+1]) {
                swap(arr[j], arr[j+1]);
            }
        }
    }
}`,
			ViewJava: `void bubbleSort(int[] arr) {
    int n = arr.length;
    for (int i = 0; i < n-1; i++) {
        for (int j = 0; j < n-i-1; j++) {
            if (arr[j] > arr[j+1]) {
                int temp = arr[j];
                arr[j] = arr[j+1];
                arr[j+1] = temp;
            }
        }
    }
}`,
		},
	}
}

func selectionEntry() *Entry {
	return &Entry{
		Name:        "selection",
		Description: "selection sort: move the minimum of the unsorted tail into place",
		Pseudocode: []string{
			"Repeat for i = 0 to n-1:",
			"  Find the index of the minimum element in i..n-1",
			"  If min_index != i:",
			"    Swap element at i with element at min_index",
		},
		markerLines: map[sorting.Label]int{
			sorting.LabelScanStart:    0,
			sorting.LabelCompare:      1,
			sorting.LabelNewMinimum:   1,
			sorting.LabelSwapDecision: 2,
		},
		compareLine: 1,
		swapLine:    3,
		Code: map[View]string{
			ViewPython: `def selection_sort(arr):
    n = len(arr)
    for i in range(n):
        min_idx = i
        for j in range(i+1, n):
            if arr[j] < arr[min_idx]:
                min_idx = j
        if min_idx != i:
            arr[i], arr[min_idx] = arr[min_idx], arr[i]`,
			ViewC: `void selectionSort(int arr[], int n) {
    for (int i = 0; i < n-1; i++) {
        int min_idx = i;
        for (int j = i+1; j < n; j++) {
            if (arr[j] < arr[min_idx])
                min_idx = j;
        }
        if (min_idx != i) {
            int temp = arr[i];
            arr[i] = arr[min_idx];
            arr[min_idx] = temp;
        }
    }
}`,
			ViewCPP: `void selectionSort(vector<int>& arr) {
    int n = arr.size();
    for (int i = 0; i < n-1; i++) {
        int min_idx = i;
        for (int j = i+1; j < n; j++) {
            if (arr[j] < arr[min_idx])
                min_idx = j;
        }
        if (min_idx != i)
            swap(arr[i], arr[min_idx]);
    }
}`,
			ViewJava: `void selectionSort(int[] arr) {
    int n = arr.length;
    for (int i = 0; i < n-1; i++) {
        int min_idx = i;
        for (int j = i+1; j < n; j++) {
            if (arr[j] < arr[min_idx])
                min_idx = j;
        }
        if (min_idx != i) {
            int temp = arr[i];
            arr[i] = arr[min_idx];
            arr[min_idx] = temp;
        }
    }
}`,
		},
	}
}
